package operations

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DoctorusRepoOwner/common/internal/status"
)

// Display labels compose an action verb with a resource noun per
// locale. Unlike the status tables, which are validated complete, the
// operation vocabulary is open at the edges (embedding applications
// declare custom resources), so a missing translation falls back to a
// humanized form of the raw key instead of failing.

var actionVerbs = map[Action]status.Text{
	ActionCreate: {status.LocaleUS: "Create", status.LocaleFR: "Créer"},
	ActionRead:   {status.LocaleUS: "View", status.LocaleFR: "Consulter"},
	ActionUpdate: {status.LocaleUS: "Update", status.LocaleFR: "Modifier"},
	ActionDelete: {status.LocaleUS: "Delete", status.LocaleFR: "Supprimer"},
	ActionList:   {status.LocaleUS: "List", status.LocaleFR: "Lister"},
	ActionExport: {status.LocaleUS: "Export", status.LocaleFR: "Exporter"},
}

var resourceNouns = map[Resource]status.Text{
	ResourcePatient:        {status.LocaleUS: "Patient", status.LocaleFR: "Patient"},
	ResourcePractitioner:   {status.LocaleUS: "Practitioner", status.LocaleFR: "Praticien"},
	ResourceAppointment:    {status.LocaleUS: "Appointment", status.LocaleFR: "Rendez-vous"},
	ResourceMedicalService: {status.LocaleUS: "Medical Service", status.LocaleFR: "Prestation médicale"},
	ResourceInvoice:        {status.LocaleUS: "Invoice", status.LocaleFR: "Facture"},
	ResourcePayment:        {status.LocaleUS: "Payment", status.LocaleFR: "Paiement"},
	ResourceDocument:       {status.LocaleUS: "Document", status.LocaleFR: "Document"},
	ResourceUser:           {status.LocaleUS: "User", status.LocaleFR: "Utilisateur"},
	ResourceRole:           {status.LocaleUS: "Role", status.LocaleFR: "Rôle"},
	ResourceParameter:      {status.LocaleUS: "Parameter", status.LocaleFR: "Paramètre"},
}

var titleCaser = cases.Title(language.AmericanEnglish)

// Label returns the display label of an operation for a locale, e.g.
// "Create Patient" or "Créer Patient". Malformed operations and
// unknown locales are errors; an operation whose resource or action has
// no translation gets the humanized raw key.
func Label(op Operation, locale status.Locale) (string, error) {
	if !locale.Known() {
		return "", &status.UnknownLocaleError{Locale: locale}
	}
	r, a, err := ParseOperation(string(op))
	if err != nil {
		return "", err
	}

	verb, verbOK := actionVerbs[a]
	noun, nounOK := resourceNouns[r]
	if !verbOK || !nounOK {
		return Humanize(op), nil
	}
	return verb[locale] + " " + noun[locale], nil
}

// Humanize turns a raw operation key into a readable title, action
// first: "medical_service:create" becomes "Create Medical Service".
// Operations that do not parse are title-cased whole.
func Humanize(op Operation) string {
	r, a, err := ParseOperation(string(op))
	if err != nil {
		return titleCaser.String(strings.NewReplacer(":", " ", "_", " ").Replace(string(op)))
	}
	words := strings.ReplaceAll(string(a), "_", " ") + " " + strings.ReplaceAll(string(r), "_", " ")
	return titleCaser.String(words)
}
