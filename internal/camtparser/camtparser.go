// Package camtparser extracts statement records from CAMT.053 XML files
// (ISO 20022 bank-to-customer statement).
package camtparser

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"fjacquet/camt-import/internal/models"
)

// Statement-level paths, relative to a Stmt node.
var (
	pathStatement      = xmlpath.MustCompile("//BkToCstmrStmt/Stmt")
	pathStatementID    = xmlpath.MustCompile("Id")
	pathLegalSeqNb     = xmlpath.MustCompile("LglSeqNb")
	pathAccountIBAN    = xmlpath.MustCompile("Acct/Id/IBAN")
	pathAccountOtherID = xmlpath.MustCompile("Acct/Id/Othr/Id")
	pathCurrency       = xmlpath.MustCompile("Acct/Ccy")
	pathFromDate       = xmlpath.MustCompile("FrToDt/FrDtTm")
	pathToDate         = xmlpath.MustCompile("FrToDt/ToDtTm")
	pathBalance        = xmlpath.MustCompile("Bal")
	pathBalanceCode    = xmlpath.MustCompile("Tp/CdOrPrtry/Cd")
	pathBalanceAmount  = xmlpath.MustCompile("Amt")
	pathBalanceCcy     = xmlpath.MustCompile("Amt/@Ccy")
	pathBalanceCdtDbt  = xmlpath.MustCompile("CdtDbtInd")
	pathEntry          = xmlpath.MustCompile("Ntry")
)

// Entry-level paths, relative to an Ntry node.
var (
	pathEntryAmount     = xmlpath.MustCompile("Amt")
	pathEntryCdtDbtInd  = xmlpath.MustCompile("CdtDbtInd")
	pathEntryBookingDt  = xmlpath.MustCompile("BookgDt/Dt")
	pathEntryValueDt    = xmlpath.MustCompile("ValDt/Dt")
	pathEntrySvcRef     = xmlpath.MustCompile("AcctSvcrRef")
	pathEntryRef        = xmlpath.MustCompile("NtryRef")
	pathEntryEndToEnd   = xmlpath.MustCompile("NtryDtls/TxDtls/Refs/EndToEndId")
	pathEntryRemittance = xmlpath.MustCompile("NtryDtls/TxDtls/RmtInf/Ustrd")
	pathEntryAddInfo    = xmlpath.MustCompile("AddtlNtryInf")
	pathEntryTxCode     = xmlpath.MustCompile("BkTxCd/Domn/Cd")
	pathEntryTxProprtry = xmlpath.MustCompile("BkTxCd/Prtry/Cd")

	pathDebtorName     = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Dbtr/Nm")
	pathCreditorName   = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Cdtr/Nm")
	pathDebtorIBAN     = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/DbtrAcct/Id/IBAN")
	pathCreditorIBAN   = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/CdtrAcct/Id/IBAN")
	pathDebtorAgent    = xmlpath.MustCompile("NtryDtls/TxDtls/RltdAgts/DbtrAgt/FinInstnId/BIC")
	pathCreditorAgent  = xmlpath.MustCompile("NtryDtls/TxDtls/RltdAgts/CdtrAgt/FinInstnId/BIC")
	pathDebtorAddrLn   = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Dbtr/PstlAdr/AdrLine")
	pathCreditorAddrLn = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Cdtr/PstlAdr/AdrLine")
	pathDebtorTown     = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Dbtr/PstlAdr/TwnNm")
	pathCreditorTown   = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Cdtr/PstlAdr/TwnNm")
	pathDebtorPostCd   = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Dbtr/PstlAdr/PstCd")
	pathCreditorPostCd = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Cdtr/PstlAdr/PstCd")
	pathDebtorCtry     = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Dbtr/PstlAdr/Ctry")
	pathCreditorCtry   = xmlpath.MustCompile("NtryDtls/TxDtls/RltdPties/Cdtr/PstlAdr/Ctry")
)

// Parser reads CAMT.053 files into the statement records consumed by the
// reconciliation engine.
type Parser struct {
	log *logrus.Logger
}

// New creates a CAMT.053 parser. A nil logger gets a fresh default instance.
func New(logger *logrus.Logger) *Parser {
	if logger == nil {
		logger = logrus.New()
	}
	return &Parser{log: logger}
}

// ParseFile parses a CAMT.053 XML file and returns its statement records,
// each with its transactions in document order.
func (p *Parser) ParseFile(xmlFile string) ([]models.StatementRecord, error) {
	p.log.WithField("file", xmlFile).Info("Parsing CAMT.053 XML file")

	f, err := os.Open(xmlFile)
	if err != nil {
		return nil, fmt.Errorf("error opening XML file: %w", err)
	}
	defer f.Close()

	root, err := xmlpath.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing XML: %w", err)
	}

	var records []models.StatementRecord
	iter := pathStatement.Iter(root)
	for iter.Next() {
		record, err := p.extractStatement(iter.Node())
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("not a CAMT.053 file: %s contains no statements", xmlFile)
	}

	p.log.WithFields(logrus.Fields{
		"file":  xmlFile,
		"count": len(records),
	}).Info("Successfully extracted statements from CAMT.053 file")
	return records, nil
}

// ValidateFormat checks if a file is a valid CAMT.053 XML file.
func (p *Parser) ValidateFormat(xmlFile string) (bool, error) {
	f, err := os.Open(xmlFile)
	if err != nil {
		return false, fmt.Errorf("error opening XML file: %w", err)
	}
	defer f.Close()

	root, err := xmlpath.Parse(f)
	if err != nil {
		// Not valid XML, but that is a negative answer rather than an error.
		return false, nil
	}
	return pathStatement.Iter(root).Next(), nil
}

func (p *Parser) extractStatement(stmt *xmlpath.Node) (models.StatementRecord, error) {
	record := models.StatementRecord{
		Name:         firstString(pathStatementID, stmt),
		CurrencyCode: firstString(pathCurrency, stmt),
	}

	record.AccountNumber = firstString(pathAccountIBAN, stmt)
	if record.AccountNumber == "" {
		// Some servicers only deliver the national account number.
		record.AccountNumber = firstString(pathAccountOtherID, stmt)
	}

	if seq := firstString(pathLegalSeqNb, stmt); seq != "" {
		if n, err := strconv.Atoi(seq); err == nil {
			record.LegalSequenceNumber = &n
		}
	}

	if d, ok := parseDate(firstString(pathFromDate, stmt)); ok {
		record.StartDate = d
	}
	if d, ok := parseDate(firstString(pathToDate, stmt)); ok {
		record.EndDate = d
	}

	p.extractBalances(stmt, &record)

	index := 0
	iter := pathEntry.Iter(stmt)
	for iter.Next() {
		movement, err := p.extractEntry(iter.Node(), record.Name, index)
		if err != nil {
			return record, err
		}
		record.Transactions = append(record.Transactions, movement)
		index++
	}
	return record, nil
}

// extractBalances maps the OPBD balance to the opening balance and the CLBD
// balance to the bank-confirmed closing balance. The computed closing
// balance falls back to CLBD when no CLAV balance is present.
func (p *Parser) extractBalances(stmt *xmlpath.Node, record *models.StatementRecord) {
	iter := pathBalance.Iter(stmt)
	for iter.Next() {
		bal := iter.Node()
		amount, err := decimal.NewFromString(firstString(pathBalanceAmount, bal))
		if err != nil {
			p.log.WithError(err).Warn("Failed to parse balance amount, skipping")
			continue
		}
		if firstString(pathBalanceCdtDbt, bal) == "DBIT" {
			amount = amount.Neg()
		}
		if record.CurrencyCode == "" {
			record.CurrencyCode = firstString(pathBalanceCcy, bal)
		}
		switch firstString(pathBalanceCode, bal) {
		case "OPBD":
			record.BalanceStart = amount
		case "CLBD":
			record.BalanceEndReal = amount
			if record.BalanceEnd.IsZero() {
				record.BalanceEnd = amount
			}
		case "CLAV":
			record.BalanceEnd = amount
		}
	}
}

func (p *Parser) extractEntry(entry *xmlpath.Node, statementName string, index int) (models.MovementRecord, error) {
	movement := models.MovementRecord{
		Ref:     firstString(pathEntryRef, entry),
		EREF:    firstString(pathEntryEndToEnd, entry),
		Message: firstString(pathEntryRemittance, entry),
	}
	if movement.Message == "" {
		movement.Message = firstString(pathEntryAddInfo, entry)
	}

	amountStr := firstString(pathEntryAmount, entry)
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return movement, fmt.Errorf("failed to parse amount %q: %w", amountStr, err)
	}
	creditDebit := firstString(pathEntryCdtDbtInd, entry)
	if creditDebit == "DBIT" {
		amount = amount.Neg()
	}
	movement.Amount = amount

	bookingDate, ok := parseDate(firstString(pathEntryBookingDt, entry))
	if !ok {
		return movement, fmt.Errorf("entry %d of statement %s has no booking date", index, statementName)
	}
	movement.Date = bookingDate
	movement.ExecutionDate = &bookingDate
	if d, ok := parseDate(firstString(pathEntryValueDt, entry)); ok {
		movement.ValueDate = &d
	}

	// The account servicer reference is the stable movement identity across
	// redeliveries of the same feed. Synthesize one from the statement when
	// it is missing.
	movement.UniqueImportID = firstString(pathEntrySvcRef, entry)
	if movement.UniqueImportID == "" {
		movement.UniqueImportID = fmt.Sprintf("%s-%04d", statementName, index)
	}

	movement.TransferType = firstString(pathEntryTxCode, entry)
	if movement.TransferType == "" {
		movement.TransferType = firstString(pathEntryTxProprtry, entry)
	}

	// The remote party is the debtor for incoming money, the creditor for
	// outgoing money.
	if creditDebit == "DBIT" {
		movement.RemoteOwner = firstString(pathCreditorName, entry)
		movement.RemoteAccount = firstString(pathCreditorIBAN, entry)
		movement.RemoteBIC = firstString(pathCreditorAgent, entry)
		movement.RemoteOwnerAddress = allStrings(pathCreditorAddrLn, entry)
		movement.RemoteOwnerCity = firstString(pathCreditorTown, entry)
		movement.RemoteOwnerPostalCode = firstString(pathCreditorPostCd, entry)
		movement.RemoteOwnerCountryCode = firstString(pathCreditorCtry, entry)
	} else {
		movement.RemoteOwner = firstString(pathDebtorName, entry)
		movement.RemoteAccount = firstString(pathDebtorIBAN, entry)
		movement.RemoteBIC = firstString(pathDebtorAgent, entry)
		movement.RemoteOwnerAddress = allStrings(pathDebtorAddrLn, entry)
		movement.RemoteOwnerCity = firstString(pathDebtorTown, entry)
		movement.RemoteOwnerPostalCode = firstString(pathDebtorPostCd, entry)
		movement.RemoteOwnerCountryCode = firstString(pathDebtorCtry, entry)
	}

	return movement, nil
}

func firstString(path *xmlpath.Path, node *xmlpath.Node) string {
	if value, ok := path.String(node); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func allStrings(path *xmlpath.Path, node *xmlpath.Node) []string {
	var values []string
	iter := path.Iter(node)
	for iter.Next() {
		values = append(values, strings.TrimSpace(iter.Node().String()))
	}
	return values
}

// parseDate accepts the date and date-time forms found in CAMT files.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
