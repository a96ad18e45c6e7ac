// Package ofx reads bank statements in OFX/QFX format and turns them into transactions.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/gateway/client"
)

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagPattern  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

const maxDescriptionLength = 255

// Entry is one statement line.
type Entry struct {
	FiTID       string
	Account     string
	Date        time.Time
	Description string
	Amount      decimal.Decimal // always positive
	Type        string          // expense or income
}

// Parse reads a statement and returns its entries in file order.
// Lines sharing a FITID with an earlier line are dropped, as are zero-amount lines.
func Parse(r io.Reader) ([]Entry, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []Entry
	seen := make(map[string]bool)
	add := func(account string, list *ofxgo.TransactionList) {
		if list == nil {
			return
		}
		for _, tx := range list.Transactions {
			entry, ok := convert(tx, account)
			if !ok {
				continue
			}
			if entry.FiTID != "" {
				if seen[entry.FiTID] {
					continue
				}
				seen[entry.FiTID] = true
			}
			entries = append(entries, entry)
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			add(string(stmt.BankAcctFrom.AcctID), stmt.BankTranList)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			add(string(stmt.CCAcctFrom.AcctID), stmt.BankTranList)
		}
	}

	slog.Debug("parsed OFX statement", "entries", len(entries))

	return entries, nil
}

// preprocess fixes formatting quirks some banks emit.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagPattern.ReplaceAllString(content, "$1>")
}

func convert(tx ofxgo.Transaction, account string) (Entry, bool) {
	amount, err := decimal.NewFromString(tx.TrnAmt.FloatString(2))
	if err != nil || amount.IsZero() {
		return Entry{}, false
	}

	entryType := "income"
	if amount.IsNegative() {
		entryType = "expense"
		amount = amount.Abs()
	}

	return Entry{
		FiTID:       string(tx.FiTID),
		Account:     account,
		Date:        tx.DtPosted.Time,
		Description: description(tx),
		Amount:      amount,
		Type:        entryType,
	}, true
}

func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}
	if memo := strings.TrimSpace(string(tx.Memo)); memo != "" {
		return memo
	}
	return "Movimiento importado"
}

// ToNewTransaction builds the create request for an entry. An empty categoryID leaves it uncategorized.
func (e Entry) ToNewTransaction(categoryID string) client.NewTransaction {
	description := e.Description
	if runes := []rune(description); len(runes) > maxDescriptionLength {
		description = string(runes[:maxDescriptionLength])
	}

	req := client.NewTransaction{
		Description: description,
		Amount:      e.Amount,
		Type:        e.Type,
		Date:        e.Date.Format(time.DateOnly),
	}
	if e.FiTID != "" {
		req.Notes = "OFX " + e.FiTID
	}
	if categoryID != "" {
		req.CategoryID = &categoryID
	}
	return req
}
