package camtparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<Document>
  <BkToCstmrStmt>
    <Stmt>
      <Id>2024/031</Id>
      <LglSeqNb>31</LglSeqNb>
      <FrToDt>
        <FrDtTm>2024-03-01T00:00:00</FrDtTm>
        <ToDtTm>2024-03-31T00:00:00</ToDtTm>
      </FrToDt>
      <Acct>
        <Id>
          <IBAN>BE07340154921566</IBAN>
        </Id>
        <Ccy>EUR</Ccy>
      </Acct>
      <Bal>
        <Tp>
          <CdOrPrtry>
            <Cd>OPBD</Cd>
          </CdOrPrtry>
        </Tp>
        <Amt Ccy="EUR">1000.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
      </Bal>
      <Bal>
        <Tp>
          <CdOrPrtry>
            <Cd>CLBD</Cd>
          </CdOrPrtry>
        </Tp>
        <Amt Ccy="EUR">1107.50</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
      </Bal>
      <Ntry>
        <Amt Ccy="EUR">42.50</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <AcctSvcrRef>REF-0001</AcctSvcrRef>
        <BookgDt>
          <Dt>2024-03-05</Dt>
        </BookgDt>
        <ValDt>
          <Dt>2024-03-06</Dt>
        </ValDt>
        <BkTxCd>
          <Domn>
            <Cd>PMNT</Cd>
          </Domn>
        </BkTxCd>
        <NtryDtls>
          <TxDtls>
            <Refs>
              <EndToEndId>E2E-1</EndToEndId>
            </Refs>
            <RltdPties>
              <Cdtr>
                <Nm>ACME SPRL</Nm>
                <PstlAdr>
                  <PstCd>4700</PstCd>
                  <TwnNm>Eupen</TwnNm>
                  <Ctry>BE</Ctry>
                  <AdrLine>Rue de la Gare 12</AdrLine>
                </PstlAdr>
              </Cdtr>
              <CdtrAcct>
                <Id>
                  <IBAN>BE20001601271956</IBAN>
                </Id>
              </CdtrAcct>
            </RltdPties>
            <RltdAgts>
              <CdtrAgt>
                <FinInstnId>
                  <BIC>GEBABEBB</BIC>
                </FinInstnId>
              </CdtrAgt>
            </RltdAgts>
            <RmtInf>
              <Ustrd>Invoice 2024-117</Ustrd>
            </RmtInf>
          </TxDtls>
        </NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="EUR">150.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt>
          <Dt>2024-03-12</Dt>
        </BookgDt>
        <NtryDtls>
          <TxDtls>
            <RltdPties>
              <Dbtr>
                <Nm>Jane Client</Nm>
              </Dbtr>
            </RltdPties>
          </TxDtls>
        </NtryDtls>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func writeTempXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFile(t *testing.T) {
	parser := New(nil)
	records, err := parser.ParseFile(writeTempXML(t, sampleXML))
	require.NoError(t, err)
	require.Len(t, records, 1)

	stmt := records[0]
	assert.Equal(t, "BE07340154921566", stmt.AccountNumber)
	assert.Equal(t, "2024/031", stmt.Name)
	assert.Equal(t, "EUR", stmt.CurrencyCode)
	require.NotNil(t, stmt.LegalSequenceNumber)
	assert.Equal(t, 31, *stmt.LegalSequenceNumber)
	assert.Equal(t, "2024-03-01", stmt.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-03-31", stmt.EndDate.Format("2006-01-02"))
	assert.True(t, stmt.BalanceStart.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, stmt.BalanceEnd.Equal(decimal.RequireFromString("1107.50")))
	assert.True(t, stmt.BalanceEndReal.Equal(decimal.RequireFromString("1107.50")))

	require.Len(t, stmt.Transactions, 2)

	debit := stmt.Transactions[0]
	assert.Equal(t, "REF-0001", debit.UniqueImportID)
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("-42.50")))
	assert.Equal(t, "2024-03-05", debit.Date.Format("2006-01-02"))
	require.NotNil(t, debit.ValueDate)
	assert.Equal(t, "2024-03-06", debit.ValueDate.Format("2006-01-02"))
	assert.Equal(t, "E2E-1", debit.EREF)
	assert.Equal(t, "Invoice 2024-117", debit.Message)
	assert.Equal(t, "PMNT", debit.TransferType)
	// Outgoing money: the remote party is the creditor.
	assert.Equal(t, "ACME SPRL", debit.RemoteOwner)
	assert.Equal(t, "BE20001601271956", debit.RemoteAccount)
	assert.Equal(t, "GEBABEBB", debit.RemoteBIC)
	assert.Equal(t, []string{"Rue de la Gare 12"}, debit.RemoteOwnerAddress)
	assert.Equal(t, "Eupen", debit.RemoteOwnerCity)
	assert.Equal(t, "4700", debit.RemoteOwnerPostalCode)
	assert.Equal(t, "BE", debit.RemoteOwnerCountryCode)

	credit := stmt.Transactions[1]
	// No AcctSvcrRef: the import id is synthesized from the statement.
	assert.Equal(t, "2024/031-0001", credit.UniqueImportID)
	assert.True(t, credit.Amount.Equal(decimal.RequireFromString("150.00")))
	// Incoming money: the remote party is the debtor.
	assert.Equal(t, "Jane Client", credit.RemoteOwner)
}

func TestParseFile_NotCAMT(t *testing.T) {
	parser := New(nil)
	_, err := parser.ParseFile(writeTempXML(t, `<?xml version="1.0"?><Document><Other/></Document>`))
	require.Error(t, err)
}

func TestValidateFormat(t *testing.T) {
	parser := New(nil)

	valid, err := parser.ValidateFormat(writeTempXML(t, sampleXML))
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = parser.ValidateFormat(writeTempXML(t, `<?xml version="1.0"?><Document><Other/></Document>`))
	require.NoError(t, err)
	assert.False(t, valid)
}
