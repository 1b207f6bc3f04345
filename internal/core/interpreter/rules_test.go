package interpreter

import (
	"strings"
	"testing"

	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "palo singular", text: "1 palo", want: "1000000"},
		{name: "palos with decimals", text: "1,5 palos", want: "1500000"},
		{name: "luca", text: "1 luca", want: "1000"},
		{name: "lucas uppercase", text: "3 LUCAS", want: "3000"},
		{name: "k suffix", text: "20k", want: "20000"},
		{name: "mil unit keeps number", text: "100 mil", want: "100"},
		{name: "pesos unit", text: "750 pesos", want: "750"},
		{name: "ars unit", text: "750 ARS", want: "750"},
		{name: "dollar suffix", text: "99$", want: "99"},
		{name: "k does not match a word", text: "5 kiosco", want: "5"},
		{name: "bare decimal", text: "gasté 12.5", want: "12.5"},
		{name: "no number", text: "hola", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAmount(tt.text)
			assert.Truef(t, decimal.RequireFromString(tt.want).Equal(got), "want %s, got %s", tt.want, got.String())
		})
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantType   domain.TransactionType
		isTransfer bool
		rule       string
	}{
		{name: "sent first person", text: "le mandé 2 lucas", wantType: domain.Expense, isTransfer: true, rule: "sent"},
		{name: "sent third person", text: "le mandó 2 lucas", wantType: domain.Expense, isTransfer: true, rule: "sent"},
		{name: "received", text: "me mandó 2 lucas", wantType: domain.Income, isTransfer: true, rule: "received"},
		{name: "sent to", text: "mandé a Ana 200", wantType: domain.Expense, isTransfer: true, rule: "sent_to"},
		{name: "income keyword", text: "recibí 200", wantType: domain.Income},
		{name: "deposit keyword", text: "Me depositaron 200", wantType: domain.Income},
		{name: "default expense", text: "compré pan 200", wantType: domain.Expense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := detectDirection(tt.text, strings.ToLower(tt.text))
			assert.Equal(t, tt.wantType, dir.txType)
			assert.Equal(t, tt.isTransfer, dir.isTransfer)
			assert.Equal(t, tt.rule, dir.rule)
		})
	}
}

func TestExtractCounterparty(t *testing.T) {
	assert.Equal(t, "mamá", extractCounterparty("mamá me mandó 3 lucas"))
	assert.Equal(t, "Juan", extractCounterparty("le mandé 3 lucas a Juan"))
	assert.Equal(t, "Juan", extractCounterparty("le mandé a Juan 3 lucas"))
	assert.Equal(t, "Lu", extractCounterparty("mandé a Lu 500"))
	assert.Empty(t, extractCounterparty("me mandó 3 lucas"))
}

func TestResolveCategory(t *testing.T) {
	lexicon := domain.DefaultLexicon()

	tests := []struct {
		name   string
		text   string
		dir    direction
		salary bool
		want   string
	}{
		{name: "transfer is fixed", text: "me mandó algo para la farmacia", dir: direction{txType: domain.Income, isTransfer: true}, want: "Transferencia"},
		{name: "salary flagged", text: "cobré del empleador", dir: direction{txType: domain.Income}, salary: true, want: "Salario"},
		{name: "income category named", text: "cobré inversiones", dir: direction{txType: domain.Income}, want: "Inversiones"},
		{name: "income falls back to first", text: "recibí plata", dir: direction{txType: domain.Income}, want: "Salario"},
		{name: "food", text: "compré en el kiosco", dir: direction{txType: domain.Expense}, want: "Comida"},
		{name: "transport", text: "pagué el uber", dir: direction{txType: domain.Expense}, want: "Transporte"},
		{name: "services", text: "pagué la luz", dir: direction{txType: domain.Expense}, want: "Servicios"},
		{name: "entertainment", text: "entradas para el cine", dir: direction{txType: domain.Expense}, want: "Entretenimiento"},
		{name: "health", text: "fui a la farmacia", dir: direction{txType: domain.Expense}, want: "Salud"},
		{name: "first matching table entry wins", text: "café en el cine", dir: direction{txType: domain.Expense}, want: "Comida"},
		{name: "expense falls back to Otros", text: "regalo", dir: direction{txType: domain.Expense}, want: "Otros"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCategory(strings.ToLower(tt.text), tt.dir, tt.salary, lexicon))
		})
	}
}

func TestResolveExpenseCategory_LastEntryWhenNoOtros(t *testing.T) {
	assert.Equal(t, "Varios", resolveExpenseCategory("regalo", []string{"Casa", "Varios"}))
	assert.Empty(t, resolveExpenseCategory("regalo", nil))
}

func TestBuildDescription(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		txType   domain.TransactionType
		category string
		want     string
	}{
		{name: "first three meaningful words", text: "compré zapatillas nuevas deportivas 30 lucas", txType: domain.Expense, want: "compré zapatillas nuevas"},
		{name: "stopwords dropped", text: "compré algo para cuando viaje 300", txType: domain.Expense, want: "compré algo viaje"},
		{name: "expense fallback", text: "gasté 30", txType: domain.Expense, category: "Otros", want: "Gasto en Otros"},
		{name: "only listed unit words dropped", text: "gasté 1 luca en el kiosco", txType: domain.Expense, want: "gasté luca kiosco"},
		{name: "income fallback", text: "cobré 30 lucas", txType: domain.Income, category: "Salario", want: "Ingreso - Salario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDescription(tt.text, tt.txType, tt.category))
		})
	}
}

func TestTransferDescription(t *testing.T) {
	assert.Equal(t, "Transferencia de papá", transferDescription(domain.Income, "papá"))
	assert.Equal(t, "Transferencia recibida", transferDescription(domain.Income, ""))
	assert.Equal(t, "Transferencia a Juan", transferDescription(domain.Expense, "Juan"))
	assert.Equal(t, "Transferencia enviada", transferDescription(domain.Expense, ""))
}

func TestMatchPaymentMethod(t *testing.T) {
	assert.Equal(t, "Efectivo", matchPaymentMethod("en efectivo"))
	assert.Equal(t, "Tarjeta de Crédito", matchPaymentMethod("con crédito"))
	assert.Equal(t, "Transferencia", matchPaymentMethod("te pasé por alias"))
	assert.Equal(t, "cheque", matchPaymentMethod("cheque"))
}
