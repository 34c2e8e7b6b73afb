package order

// Lang selects the display language for status labels. The storefront is
// French-first with Dutch and English variants.
type Lang string

const (
	LangFR Lang = "fr"
	LangNL Lang = "nl"
	LangEN Lang = "en"
)

const DefaultLang = LangFR

type label struct {
	fr, nl, en string
}

var labels = map[Status]label{
	StatusDraft:         {"Brouillon", "Concept", "Draft"},
	StatusNew:           {"Nouvelle demande", "Nieuwe aanvraag", "New request"},
	StatusPendingDrop:   {"En attente de dépôt", "Wacht op afgifte", "Awaiting drop-off"},
	StatusReceived:      {"Appareil reçu", "Toestel ontvangen", "Device received"},
	StatusInDiagnostic:  {"En diagnostic", "In diagnose", "In diagnostic"},
	StatusWaitingParts:  {"En attente de pièces", "Wacht op onderdelen", "Waiting for parts"},
	StatusVerified:      {"Vérifié", "Gecontroleerd", "Verified"},
	StatusPaymentQueued: {"Paiement en préparation", "Betaling in voorbereiding", "Payment queued"},
	StatusInvoiced:      {"Facturé", "Gefactureerd", "Invoiced"},
	StatusPaid:          {"Payé", "Betaald", "Paid"},
	StatusInRepair:      {"En réparation", "In reparatie", "In repair"},
	StatusReady:         {"Prêt", "Klaar", "Ready"},
	StatusShipped:       {"Expédié", "Verzonden", "Shipped"},
	StatusCompleted:     {"Terminé", "Afgerond", "Completed"},
	StatusCancelled:     {"Annulé", "Geannuleerd", "Cancelled"},
	StatusIssue:         {"Problème signalé", "Probleem gemeld", "Issue reported"},

	StatusProcessing:  {"En traitement", "In behandeling", "Processing"},
	StatusHolding:     {"En attente", "In de wacht", "On hold"},
	StatusRepaired:    {"Réparé", "Gerepareerd", "Repaired"},
	StatusResponded:   {"Réponse envoyée", "Antwoord verzonden", "Responded"},
	StatusInspected:   {"Inspecté", "Geïnspecteerd", "Inspected"},
	StatusPaymentSent: {"Paiement envoyé", "Betaling verzonden", "Payment sent"},
	StatusClosed:      {"Clôturé", "Gesloten", "Closed"},
}

// Label returns the display label for a status. Unsupported languages fall
// back to the default language; unknown statuses echo the raw tag so a stale
// client never sees an empty string.
func Label(s Status, lang Lang) string {
	l, ok := labels[s]
	if !ok {
		return string(s)
	}
	switch lang {
	case LangNL:
		return l.nl
	case LangEN:
		return l.en
	default:
		return l.fr
	}
}
