package catalog

import "encoding/json"

// Comparison category names as rendered on the pricing page.
const (
	CategoryPages        = "Pagine e Contenuti"
	CategoryTechnical    = "Funzionalità Tecniche"
	CategoryIntegrations = "Integrazioni e Servizi"
	CategorySupport      = "Supporto e Training"
)

// CellKind discriminates the three cell shapes of the comparison matrix.
type CellKind string

const (
	CellKindBool   CellKind = "bool"
	CellKindValue  CellKind = "value"
	CellKindDetail CellKind = "detail"
)

// ComparisonCell is one cell of the matrix: either a plain inclusion flag, a
// scalar value, or a value with short and long descriptions.
type ComparisonCell struct {
	Kind     CellKind
	Included bool
	Value    string
	Short    string
	Long     string
}

func cellNo() ComparisonCell  { return ComparisonCell{Kind: CellKindBool, Included: false} }
func cellYes() ComparisonCell { return ComparisonCell{Kind: CellKindBool, Included: true} }

func cellValue(v string) ComparisonCell {
	return ComparisonCell{Kind: CellKindValue, Value: v}
}

func cellDetail(v, short, long string) ComparisonCell {
	return ComparisonCell{Kind: CellKindDetail, Value: v, Short: short, Long: long}
}

// MarshalJSON renders bool cells as booleans, value cells as strings and
// detail cells as {value, shortDescription, longDescription} objects, the
// shape the pricing page consumes.
func (c ComparisonCell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellKindValue:
		return json.Marshal(c.Value)
	case CellKindDetail:
		return json.Marshal(struct {
			Value string `json:"value"`
			Short string `json:"shortDescription"`
			Long  string `json:"longDescription"`
		}{c.Value, c.Short, c.Long})
	default:
		return json.Marshal(c.Included)
	}
}

// ComparisonRow is one feature across the three levels of a tier, ordered
// base, standard, premium.
type ComparisonRow struct {
	Feature string            `json:"feature"`
	Cells   [3]ComparisonCell `json:"levels"`
}

// Cell returns the cell for a level.
func (r ComparisonRow) Cell(l Level) ComparisonCell {
	switch l {
	case LevelStandard:
		return r.Cells[1]
	case LevelPremium:
		return r.Cells[2]
	default:
		return r.Cells[0]
	}
}

// ComparisonCategory groups rows under one of the four fixed categories.
type ComparisonCategory struct {
	Name string          `json:"name"`
	Rows []ComparisonRow `json:"rows"`
}

// GetTierLevelComparisonData returns the comparison matrix of a tier. The
// per-cell values are catalog content looked up from the declarative table
// below; derivation logic never branches on the tier identifier.
func GetTierLevelComparisonData(t Tier) []ComparisonCategory {
	return comparisonMatrix[t]
}

var comparisonMatrix = map[Tier][]ComparisonCategory{
	TierStarter: {
		{
			Name: CategoryPages,
			Rows: []ComparisonRow{
				{Feature: "Pagine incluse", Cells: [3]ComparisonCell{
					cellValue("3"), cellValue("5"), cellValue("8"),
				}},
				{Feature: "Blog", Cells: [3]ComparisonCell{
					cellNo(),
					cellDetail("2 articoli", "Blog attivo", "Blog configurato con 2 articoli di lancio scritti dal nostro team"),
					cellDetail("4 articoli", "Blog attivo", "Blog configurato con 4 articoli di lancio scritti dal nostro team"),
				}},
				{Feature: "Galleria fotografica", Cells: [3]ComparisonCell{
					cellValue("12 foto"), cellValue("30 foto"), cellValue("Illimitata"),
				}},
				{Feature: "Menù digitale con QR code", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellYes(),
				}},
			},
		},
		{
			Name: CategoryTechnical,
			Rows: []ComparisonRow{
				{Feature: "Design responsive", Cells: [3]ComparisonCell{
					cellYes(), cellYes(), cellYes(),
				}},
				{Feature: "Sistema prenotazioni", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellNo(),
				}},
				{Feature: "Ottimizzazione velocità", Cells: [3]ComparisonCell{
					cellNo(), cellYes(), cellYes(),
				}},
				{Feature: "Backup automatici", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellValue("Settimanali"),
				}},
			},
		},
		{
			Name: CategoryIntegrations,
			Rows: []ComparisonRow{
				{Feature: "Google My Business", Cells: [3]ComparisonCell{
					cellDetail("Base", "Scheda collegata", "Collegamento della scheda esistente al sito"),
					cellDetail("Completa", "Configurazione completa", "Creazione o revisione completa della scheda con foto e orari"),
					cellDetail("Completa", "Configurazione completa", "Creazione o revisione completa della scheda con foto e orari"),
				}},
				{Feature: "WhatsApp Business", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellYes(),
				}},
				{Feature: "Newsletter", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellDetail("Modulo iscrizione", "Raccolta contatti", "Modulo di iscrizione collegato alla piattaforma newsletter"),
				}},
			},
		},
		{
			Name: CategorySupport,
			Rows: []ComparisonRow{
				{Feature: "Assistenza", Cells: [3]ComparisonCell{
					cellValue("2 mesi"), cellValue("4 mesi"), cellDetail("6 mesi", "Prioritaria", "Canale prioritario con risposta entro un giorno lavorativo"),
				}},
				{Feature: "Formazione", Cells: [3]ComparisonCell{
					cellNo(), cellValue("1 sessione"), cellValue("2 sessioni"),
				}},
				{Feature: "Revisioni incluse", Cells: [3]ComparisonCell{
					cellValue("2"), cellValue("3"), cellValue("4"),
				}},
			},
		},
	},
	TierPro: {
		{
			Name: CategoryPages,
			Rows: []ComparisonRow{
				{Feature: "Pagine incluse", Cells: [3]ComparisonCell{
					cellValue("8"), cellValue("12"), cellValue("Illimitate"),
				}},
				{Feature: "Blog", Cells: [3]ComparisonCell{
					cellDetail("Configurato", "Pronto all'uso", "Blog configurato e pronto per la pubblicazione autonoma"),
					cellDetail("4 articoli", "Blog attivo", "Blog configurato con 4 articoli di lancio scritti dal nostro team"),
					cellDetail("8 articoli", "Blog attivo", "Blog configurato con 8 articoli di lancio scritti dal nostro team"),
				}},
				{Feature: "Sito multilingua", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellValue("2 lingue"),
				}},
			},
		},
		{
			Name: CategoryTechnical,
			Rows: []ComparisonRow{
				{Feature: "Design personalizzato", Cells: [3]ComparisonCell{
					cellYes(), cellYes(), cellYes(),
				}},
				{Feature: "Sistema prenotazioni", Cells: [3]ComparisonCell{
					cellDetail("Calendario", "Prenotazioni online", "Calendario prenotazioni integrato con conferma automatica"),
					cellDetail("Promemoria", "Prenotazioni e promemoria", "Prenotazioni con promemoria automatici via email e SMS"),
					cellDetail("Pagamento anticipato", "Prenotazioni con incasso", "Prenotazioni con pagamento anticipato per ridurre i no-show"),
				}},
				{Feature: "Area clienti", Cells: [3]ComparisonCell{
					cellNo(), cellYes(), cellYes(),
				}},
				{Feature: "Backup automatici", Cells: [3]ComparisonCell{
					cellNo(), cellValue("Settimanali"), cellValue("Giornalieri"),
				}},
			},
		},
		{
			Name: CategoryIntegrations,
			Rows: []ComparisonRow{
				{Feature: "Google Calendar", Cells: [3]ComparisonCell{
					cellYes(), cellYes(), cellYes(),
				}},
				{Feature: "Pagamenti online", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellDetail("Stripe/PayPal", "Incassi online", "Pagamenti online integrati nel flusso di prenotazione"),
				}},
				{Feature: "WhatsApp Business", Cells: [3]ComparisonCell{
					cellYes(), cellYes(), cellYes(),
				}},
				{Feature: "Newsletter", Cells: [3]ComparisonCell{
					cellNo(),
					cellDetail("Automazione benvenuto", "Newsletter attiva", "Piattaforma newsletter con automazione di benvenuto"),
					cellDetail("Automazioni avanzate", "Newsletter attiva", "Automazioni su iscrizione, promemoria e follow-up"),
				}},
			},
		},
		{
			Name: CategorySupport,
			Rows: []ComparisonRow{
				{Feature: "Assistenza", Cells: [3]ComparisonCell{
					cellValue("6 mesi"),
					cellDetail("8 mesi", "Prioritaria", "Canale prioritario con risposta entro un giorno lavorativo"),
					cellDetail("12 mesi", "Prioritaria", "Canale prioritario con risposta entro un giorno lavorativo"),
				}},
				{Feature: "Formazione", Cells: [3]ComparisonCell{
					cellValue("1 sessione"), cellValue("2 sessioni"), cellValue("3 sessioni"),
				}},
				{Feature: "Revisioni incluse", Cells: [3]ComparisonCell{
					cellValue("3"), cellValue("4"), cellValue("5"),
				}},
			},
		},
	},
	TierEcommerce: {
		{
			Name: CategoryPages,
			Rows: []ComparisonRow{
				{Feature: "Catalogo prodotti", Cells: [3]ComparisonCell{
					cellValue("50 prodotti"), cellValue("200 prodotti"), cellValue("Illimitato"),
				}},
				{Feature: "Blog", Cells: [3]ComparisonCell{
					cellDetail("Configurato", "Pronto all'uso", "Blog configurato e pronto per la pubblicazione autonoma"),
					cellDetail("4 articoli", "Blog attivo", "Blog configurato con 4 articoli di lancio scritti dal nostro team"),
					cellDetail("8 articoli", "Blog attivo", "Blog configurato con 8 articoli di lancio scritti dal nostro team"),
				}},
				{Feature: "Landing promozionali", Cells: [3]ComparisonCell{
					cellNo(), cellYes(), cellYes(),
				}},
				{Feature: "Sito multilingua", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellValue("2 lingue"),
				}},
			},
		},
		{
			Name: CategoryTechnical,
			Rows: []ComparisonRow{
				{Feature: "Carrello e checkout", Cells: [3]ComparisonCell{
					cellYes(), cellYes(), cellYes(),
				}},
				{Feature: "Sistema prenotazioni", Cells: [3]ComparisonCell{
					cellDetail("Ritiro in negozio", "Click & collect", "Prenotazione del ritiro in negozio integrata nel checkout"),
					cellDetail("Ritiro in negozio", "Click & collect", "Prenotazione del ritiro in negozio integrata nel checkout"),
					cellDetail("Ritiro in negozio", "Click & collect", "Prenotazione del ritiro in negozio integrata nel checkout"),
				}},
				{Feature: "Recupero carrelli abbandonati", Cells: [3]ComparisonCell{
					cellNo(), cellYes(), cellYes(),
				}},
				{Feature: "Programma fedeltà", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellDetail("Punti e premi", "Fidelizzazione", "Programma fedeltà con raccolta punti e premi configurabili"),
				}},
				{Feature: "Backup automatici", Cells: [3]ComparisonCell{
					cellValue("Settimanali"), cellValue("Giornalieri"), cellValue("Giornalieri"),
				}},
			},
		},
		{
			Name: CategoryIntegrations,
			Rows: []ComparisonRow{
				{Feature: "Pagamenti online", Cells: [3]ComparisonCell{
					cellDetail("Stripe/PayPal", "Incassi online", "Pagamenti carta, PayPal e wallet digitali"),
					cellDetail("Stripe/PayPal/Klarna", "Incassi online", "Pagamenti carta, PayPal, wallet e rate Klarna"),
					cellDetail("Stripe/PayPal/Klarna", "Incassi online", "Pagamenti carta, PayPal, wallet e rate Klarna"),
				}},
				{Feature: "Corrieri con tracking", Cells: [3]ComparisonCell{
					cellYes(), cellYes(), cellYes(),
				}},
				{Feature: "Newsletter", Cells: [3]ComparisonCell{
					cellNo(),
					cellDetail("Post-acquisto", "Newsletter attiva", "Automazioni email dopo ogni acquisto"),
					cellDetail("Post-acquisto e fedeltà", "Newsletter attiva", "Automazioni email su acquisti e programma fedeltà"),
				}},
				{Feature: "Marketplace", Cells: [3]ComparisonCell{
					cellNo(), cellNo(), cellDetail("Amazon/eBay", "Vendi ovunque", "Sincronizzazione catalogo con i principali marketplace"),
				}},
			},
		},
		{
			Name: CategorySupport,
			Rows: []ComparisonRow{
				{Feature: "Assistenza", Cells: [3]ComparisonCell{
					cellDetail("6 mesi", "Prioritaria", "Canale prioritario con risposta entro un giorno lavorativo"),
					cellDetail("8 mesi", "Prioritaria", "Canale prioritario con risposta entro un giorno lavorativo"),
					cellDetail("12 mesi", "Dedicata", "Referente unico dedicato per un anno intero"),
				}},
				{Feature: "Formazione", Cells: [3]ComparisonCell{
					cellValue("2 sessioni"), cellValue("3 sessioni"), cellValue("4 sessioni"),
				}},
				{Feature: "Revisioni incluse", Cells: [3]ComparisonCell{
					cellValue("4"), cellValue("5"), cellValue("6"),
				}},
			},
		},
	},
}
