// Package ofx parses OFX/QFX bank exports into tally transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/tallyware/tally/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in OFX files before handing
// them to ofxgo, which is strict about SGML-era sloppiness.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Opening tags missing their closing angle bracket at end of line
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns transactions.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			accountID := string(stmt.BankAcctFrom.AcctID)
			for _, ofxTxn := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTxn, accountID))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			accountID := string(stmt.CCAcctFrom.AcctID)
			for _, ofxTxn := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTxn, accountID))
			}
		}
	}

	slog.Info("parsed OFX file", "transactions", len(transactions))
	return transactions, nil
}

// convert maps an OFX transaction onto our model. OFX uses signed
// amounts (negative for debits); tally keeps amounts non-negative and
// carries the direction in the type field.
func (p *Parser) convert(ofxTxn ofxgo.Transaction, accountID string) model.Transaction {
	amount, _ := ofxTxn.TrnAmt.Float64()
	txnType := model.TypeIncome
	if amount < 0 {
		amount = -amount
		txnType = model.TypeExpense
	}

	txn := model.Transaction{
		ID:          string(ofxTxn.FiTID),
		Date:        ofxTxn.DtPosted.Time,
		Description: p.description(ofxTxn),
		Amount:      amount,
		AccountID:   accountID,
		Type:        txnType,
	}
	txn.Normalize()
	txn.Hash = txn.GenerateHash()

	return txn
}

// description picks the most informative text the OFX record offers.
func (p *Parser) description(txn ofxgo.Transaction) string {
	if txn.Payee != nil && txn.Payee.Name != "" {
		return strings.TrimSpace(string(txn.Payee.Name))
	}
	name := strings.TrimSpace(string(txn.Name))
	if name == "" && txn.Memo != "" {
		name = strings.TrimSpace(string(txn.Memo))
	}
	return name
}
