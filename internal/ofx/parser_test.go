package ofx

import (
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"

	"github.com/tallyware/tally/internal/model"
)

func TestParser_Preprocess(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "uppercases mixed-case severity",
			input: "<SEVERITY>Info</SEVERITY>",
			want:  "<SEVERITY>INFO</SEVERITY>",
		},
		{
			name:  "closes dangling open tags",
			input: "<BANKID",
			want:  "<BANKID>",
		},
		{
			name:  "trims leading blank lines",
			input: "\n\n  OFXHEADER:100",
			want:  "OFXHEADER:100",
		},
		{
			name:  "leaves well-formed content alone",
			input: "<STMTTRN><TRNAMT>-10.00</TRNAMT></STMTTRN>",
			want:  "<STMTTRN><TRNAMT>-10.00</TRNAMT></STMTTRN>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.preprocess(tt.input))
		})
	}
}

func ofxAmount(num, den int64) ofxgo.Amount {
	var amt ofxgo.Amount
	amt.SetFrac64(num, den)
	return amt
}

func TestParser_Convert(t *testing.T) {
	parser := NewParser()
	posted := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	debit := ofxgo.Transaction{
		FiTID:    "fitid-1",
		DtPosted: ofxgo.Date{Time: posted},
		TrnAmt:   ofxAmount(-4250, 100),
		Name:     "GROCERY STORE",
	}

	txn := parser.convert(debit, "acct-1")

	assert.Equal(t, "fitid-1", txn.ID)
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, 42.50, txn.Amount)
	assert.Equal(t, "GROCERY STORE", txn.Description)
	assert.Equal(t, "acct-1", txn.AccountID)
	assert.True(t, txn.Date.Equal(posted))
	assert.Equal(t, model.DefaultCategory, txn.Category)
	assert.NotEmpty(t, txn.Hash)
}

func TestParser_ConvertCredit(t *testing.T) {
	parser := NewParser()

	credit := ofxgo.Transaction{
		FiTID:    "fitid-2",
		DtPosted: ofxgo.Date{Time: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		TrnAmt:   ofxAmount(400000, 100),
		Name:     "PAYROLL DEPOSIT",
	}

	txn := parser.convert(credit, "acct-1")

	assert.Equal(t, model.TypeIncome, txn.Type)
	assert.Equal(t, 4000.0, txn.Amount)
}

func TestParser_DescriptionPrefersPayee(t *testing.T) {
	parser := NewParser()

	withPayee := ofxgo.Transaction{
		Name:  "POS 1234",
		Payee: &ofxgo.Payee{Name: "Corner Bakery"},
	}
	assert.Equal(t, "Corner Bakery", parser.description(withPayee))

	nameOnly := ofxgo.Transaction{Name: "DIRECT DEBIT"}
	assert.Equal(t, "DIRECT DEBIT", parser.description(nameOnly))

	memoFallback := ofxgo.Transaction{Memo: "card purchase"}
	assert.Equal(t, "card purchase", parser.description(memoFallback))
}
