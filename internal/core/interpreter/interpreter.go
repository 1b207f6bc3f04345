// Package interpreter turns free-form Spanish sentences about money into transactions.
//
// Interpretation is rule driven: each concern (transfer direction, amount,
// category, payment method) is an ordered table of rules evaluated with
// first-match-wins semantics. The interpreter holds no mutable state; the
// conversation state and lexicon are passed in and a new state is returned.
package interpreter

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/SscSPs/money_chat/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Interpreter reads utterances against a lexicon and a conversation state.
type Interpreter struct {
	now      func() time.Time
	newID    func() string
	location *time.Location
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock overrides the clock used to stamp transaction dates.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) { i.now = now }
}

// WithIDGenerator overrides how transaction IDs are assigned.
func WithIDGenerator(newID func() string) Option {
	return func(i *Interpreter) { i.newID = newID }
}

// WithLocation sets the timezone that defines "today".
func WithLocation(loc *time.Location) Option {
	return func(i *Interpreter) {
		if loc != nil {
			i.location = loc
		}
	}
}

// New creates an Interpreter. By default it uses the wall clock, random UUIDs
// and the local timezone.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		now:      time.Now,
		newID:    uuid.NewString,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret reads one utterance. It returns the interpretation and the
// conversation state to use for the next utterance. Unresolved utterances
// return the input state unchanged.
func (i *Interpreter) Interpret(utterance string, state domain.ConversationState, lexicon domain.Lexicon) (domain.Interpretation, domain.ConversationState) {
	text := strings.TrimSpace(utterance)

	if state.IsAwaiting() {
		return i.resolvePaymentMethod(text, *state.Pending), domain.Idle()
	}

	lower := strings.ToLower(text)
	dir := detectDirection(text, lower)
	salary := isSalary(lower)
	amount := extractAmount(text)
	category := resolveCategory(lower, dir, salary, lexicon)

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Interpretation{
			Outcome: domain.OutcomeUnresolved,
			Message: unresolvedMessage,
		}, state
	}

	matched := MatchPhrases(lexicon.LearnedPatterns, text)

	if dir.isTransfer {
		txn := domain.Transaction{
			TransactionID: i.newID(),
			Description:   transferDescription(dir.txType, dir.person),
			Amount:        amount,
			Date:          i.today(),
			Category:      category,
			Type:          dir.txType,
			PaymentMethod: transferPaymentMethod,
			Person:        dir.person,
		}
		return domain.Interpretation{
			Outcome:        domain.OutcomeCompleted,
			Message:        transferMessage(txn),
			Transaction:    &txn,
			MatchedPhrases: matched,
		}, domain.Idle()
	}

	description := buildDescription(text, dir.txType, category)

	if dir.txType == domain.Expense {
		pending := domain.PendingTransaction{
			TransactionID: i.newID(),
			Description:   description,
			Amount:        amount,
			Category:      category,
			Type:          domain.Expense,
		}
		return domain.Interpretation{
			Outcome:        domain.OutcomeAwaitingClarification,
			Message:        paymentMethodQuestion(pending, lexicon.PaymentMethods),
			Pending:        &pending,
			MatchedPhrases: matched,
		}, domain.AwaitingPaymentMethod(pending)
	}

	method := fallbackPayment
	if len(lexicon.PaymentMethods) > 0 {
		method = lexicon.PaymentMethods[0]
	}
	txn := domain.Transaction{
		TransactionID: i.newID(),
		Description:   description,
		Amount:        amount,
		Date:          i.today(),
		Category:      category,
		Type:          domain.Income,
		PaymentMethod: method,
	}
	return domain.Interpretation{
		Outcome:        domain.OutcomeCompleted,
		Message:        completedMessage(txn),
		Transaction:    &txn,
		MatchedPhrases: matched,
	}, domain.Idle()
}

// resolvePaymentMethod consumes the clarification answer. It always completes:
// unknown answers are taken verbatim as the payment method. The pending
// transaction's ID is kept, so answering the same pending state twice
// produces the same transaction.
func (i *Interpreter) resolvePaymentMethod(text string, pending domain.PendingTransaction) domain.Interpretation {
	method := matchPaymentMethod(text)
	id := pending.TransactionID
	if id == "" {
		id = i.newID()
	}
	txn := pending.Complete(id, method, i.today())
	return domain.Interpretation{
		Outcome:     domain.OutcomeCompleted,
		Message:     completedMessage(txn),
		Transaction: &txn,
	}
}

func matchPaymentMethod(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range paymentMethodRules {
		if containsAny(lower, rule.keywords) {
			return rule.method
		}
	}
	return text
}

// today is the current calendar date at midnight in the configured location.
func (i *Interpreter) today() time.Time {
	now := i.now().In(i.location)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, i.location)
}

const unresolvedMessage = `No pude identificar el monto. ¿Me das más detalles? Por ejemplo: "gasté 2 lucas en el super".`

func completedMessage(t domain.Transaction) string {
	kind := "gasto"
	if t.Type == domain.Income {
		kind = "ingreso"
	}
	return fmt.Sprintf("Listo, registré un %s de %s en %s (%s).", kind, utils.FormatPesos(t.Amount), t.Category, t.PaymentMethod)
}

func transferMessage(t domain.Transaction) string {
	return fmt.Sprintf("Listo, registré: %s por %s.", t.Description, utils.FormatPesos(t.Amount))
}

func paymentMethodQuestion(p domain.PendingTransaction, methods []string) string {
	q := fmt.Sprintf("¿Cómo pagaste los %s de %s?", utils.FormatPesos(p.Amount), p.Category)
	if len(methods) == 0 {
		return q
	}
	return q + " Opciones: " + strings.Join(methods, ", ") + "."
}
