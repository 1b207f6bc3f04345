package interpreter

import (
	"regexp"

	"github.com/SscSPs/money_chat/internal/core/domain"
)

// Keyword tables are tuned to Argentine Spanish. All matching is done on the
// lower-cased utterance; keywords must therefore be lower case.

const (
	transferCategory      = "Transferencia"
	transferPaymentMethod = "Transferencia"
	salaryCategory        = "Salario"
	fallbackExpense       = "Otros"
	fallbackPayment       = "Efectivo"
)

// directionRule classifies an utterance as a transfer of a given direction.
type directionRule struct {
	name    string
	pattern *regexp.Regexp
	txType  domain.TransactionType
}

// transferRules are evaluated in order; the first match wins.
var transferRules = []directionRule{
	{name: "sent", pattern: regexp.MustCompile(`(?i)\ble\s+mand(?:e|é|o|ó)`), txType: domain.Expense},
	{name: "received", pattern: regexp.MustCompile(`(?i)\bme\s+mand(?:o|ó)`), txType: domain.Income},
	{name: "sent_to", pattern: regexp.MustCompile(`(?i)\bmand(?:e|é)\s+a\b`), txType: domain.Expense},
}

// counterpartyRules capture the other party of a transfer in group 1.
var counterpartyRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\p{L}+)\s+me\s+mand(?:o|ó)`),
	regexp.MustCompile(`(?i)\ble\s+mand(?:e|é)\s+(?:\S+\s+)*?a\s+(\p{L}+)`),
	regexp.MustCompile(`(?i)\bmand(?:e|é)\s+a\s+(\p{L}+)`),
}

var incomeKeywords = []string{
	"ingreso", "ingresó", "recibí", "recibi", "me pagaron", "me pagó", "me pago",
	"me depositaron", "depositaron", "deposité", "sueldo", "salario",
	"me transfirieron", "cobré",
}

var salaryKeywords = []string{
	"sueldo", "salario", "jornal", "pagado por", "mi jefe", "empleador", "trabajé", "trabaje",
}

// categoryRule maps a fixed category to the keywords that imply it.
type categoryRule struct {
	category string
	keywords []string
}

// expenseCategoryRules are evaluated in order; the first category with a
// matching keyword wins.
var expenseCategoryRules = []categoryRule{
	{category: "Comida", keywords: []string{
		"kiosco", "super", "almuerzo", "cena", "desayuno", "comida", "restaurant", "pizza",
		"empanada", "verduler", "carnicer", "panader", "delivery", "rappi", "pedidosya",
		"café", "cafe", "hamburguesa", "helado",
	}},
	{category: "Transporte", keywords: []string{
		"uber", "taxi", "cabify", "didi", "colectivo", "bondi", "subte", "tren", "nafta",
		"combustible", "peaje", "estacionamiento", "sube",
	}},
	{category: "Servicios", keywords: []string{
		"luz", "factura", "metrogas", "edenor", "edesur", "internet", "wifi", "teléfono",
		"telefono", "celular", "cable", "expensas", "alquiler",
	}},
	{category: "Entretenimiento", keywords: []string{
		"cine", "netflix", "spotify", "teatro", "recital", "boliche", "birra", "cerveza",
		"juego", "salida", "entrada",
	}},
	{category: "Salud", keywords: []string{
		"farmacia", "médico", "medico", "doctor", "remedio", "dentista", "hospital",
		"prepaga", "obra social", "clínica", "clinica",
	}},
}

// paymentMethodRule maps a canonical payment method to its synonyms.
type paymentMethodRule struct {
	method   string
	keywords []string
}

// paymentMethodRules are evaluated in order during clarification.
var paymentMethodRules = []paymentMethodRule{
	{method: "Efectivo", keywords: []string{"efectivo", "cash", "billete", "en mano"}},
	{method: "Tarjeta de Crédito", keywords: []string{"crédito", "credito", "visa", "mastercard", "amex"}},
	{method: "Tarjeta de Débito", keywords: []string{"débito", "debito", "maestro"}},
	{method: "Transferencia", keywords: []string{"transferencia", "transferí", "transferi", "mercado pago", "mercadopago", "cbu", "alias"}},
}

// descriptionStopwords are dropped when synthesising a description.
var descriptionStopwords = map[string]bool{
	"para": true, "como": true, "donde": true, "cuando": true, "porque": true,
}

var (
	pureNumberPattern = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
	amountUnitPattern = regexp.MustCompile(`(?i)^(?:lucas|mil|pesos|ars|\$)$`)
)
