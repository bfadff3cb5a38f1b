package addon

import "atelier/internal/domain/catalog"

var allTiers = []catalog.Tier{catalog.TierStarter, catalog.TierPro, catalog.TierEcommerce}

var categories = []Category{
	{
		ID:              CategoryPhotography,
		Name:            "Servizi Fotografici",
		Icon:            "camera",
		Gradient:        "from-amber-500 to-orange-600",
		DefaultExpanded: true,
		SortOrder:       1,
	},
	{
		ID:              CategoryContent,
		Name:            "Contenuti",
		Icon:            "pen-tool",
		Gradient:        "from-sky-500 to-blue-600",
		DefaultExpanded: false,
		SortOrder:       2,
	},
	{
		ID:              CategoryIntegrations,
		Name:            "Integrazioni",
		Icon:            "plug",
		Gradient:        "from-violet-500 to-purple-600",
		DefaultExpanded: false,
		SortOrder:       3,
	},
	{
		ID:              CategoryMarketing,
		Name:            "Marketing",
		Icon:            "megaphone",
		Gradient:        "from-emerald-500 to-green-600",
		DefaultExpanded: false,
		SortOrder:       4,
	},
}

// services is the registry, in pricing-page declaration order. Every service
// is currently compatible with all tiers; the field exists so the catalog can
// narrow compatibility without code changes elsewhere.
var services = []Service{
	{
		ID:          "servizio-fotografico-base",
		Name:        "Servizio fotografico base",
		Description: "Mezza giornata di shooting professionale presso la tua attività.",
		Category:    CategoryPhotography,
		Price:       350,
		CompatibleTiers: allTiers,
		Features: []string{
			"Fino a 30 foto ritoccate",
			"Consegna entro 7 giorni",
			"Diritti d'uso completi",
		},
	},
	{
		ID:          "servizio-fotografico-premium",
		Name:        "Servizio fotografico premium",
		Description: "Giornata intera di shooting con video emozionale di presentazione.",
		Category:    CategoryPhotography,
		Price:       700,
		CompatibleTiers: allTiers,
		Features: []string{
			"Fino a 80 foto ritoccate",
			"Video di presentazione 60-90 secondi",
			"Riprese con drone dove consentito",
		},
	},
	{
		ID:          "copywriting-professionale",
		Name:        "Copywriting professionale",
		Description: "Testi persuasivi scritti da copywriter madrelingua per tutte le pagine.",
		Category:    CategoryContent,
		Price:       280,
		CompatibleTiers: allTiers,
		Features: []string{
			"Tono di voce coerente con il brand",
			"Testi ottimizzati per la SEO",
			"2 giri di revisione inclusi",
		},
	},
	{
		ID:          "pacchetto-articoli-blog",
		Name:        "Pacchetto articoli blog",
		Description: "Quattro articoli al mese scritti e pubblicati dal nostro team.",
		Category:    CategoryContent,
		Price:       190,
		Recurring:   true,
		CompatibleTiers: allTiers,
		Features: []string{
			"4 articoli al mese",
			"Ricerca parole chiave inclusa",
			"Pubblicazione e immagini comprese",
		},
	},
	{
		ID:          "whatsapp-business",
		Name:        "WhatsApp Business",
		Description: "Configurazione completa di WhatsApp Business con messaggi automatici.",
		Category:    CategoryIntegrations,
		Price:       80,
		CompatibleTiers: allTiers,
		Features: []string{
			"Profilo aziendale verificato",
			"Messaggi di benvenuto e assenza",
			"Catalogo prodotti su WhatsApp",
		},
	},
	{
		ID:          "qr-code",
		Name:        "QR code personalizzato",
		Description: "QR code brandizzato per menù, listini o promozioni, con materiali di stampa.",
		Category:    CategoryIntegrations,
		Price:       80,
		CompatibleTiers: allTiers,
		Features: []string{
			"Design coordinato al brand",
			"File di stampa pronti (tavolo, vetrina)",
			"Statistiche di scansione",
		},
	},
	{
		ID:          "prenotazioni-avanzate",
		Name:        "Prenotazioni avanzate",
		Description: "Estensione del sistema prenotazioni con risorse multiple e pagamenti.",
		Category:    CategoryIntegrations,
		Price:       240,
		CompatibleTiers: allTiers,
		Features: []string{
			"Gestione operatori e sale multiple",
			"Acconti e pagamenti online",
			"Sincronizzazione calendari esterni",
		},
	},
	{
		ID:          "google-my-business-pro",
		Name:        "Google My Business Pro",
		Description: "Gestione continuativa della scheda Google con post e risposte alle recensioni.",
		Category:    CategoryMarketing,
		Price:       120,
		Recurring:   true,
		CompatibleTiers: allTiers,
		Features: []string{
			"2 post al mese sulla scheda",
			"Risposta alle recensioni entro 48 ore",
			"Report mensile di visibilità",
		},
		DefaultSelected: true,
	},
	{
		ID:          "campagna-social-lancio",
		Name:        "Campagna social di lancio",
		Description: "Campagna Meta di un mese per il lancio del nuovo sito.",
		Category:    CategoryMarketing,
		Price:       320,
		CompatibleTiers: allTiers,
		Features: []string{
			"Creatività e copy inclusi",
			"Pubblico profilato sulla zona",
			"Report finale con risultati",
		},
	},
	{
		ID:          "newsletter-gestita",
		Name:        "Newsletter gestita",
		Description: "Una newsletter al mese progettata, scritta e inviata per te.",
		Category:    CategoryMarketing,
		Price:       90,
		Recurring:   true,
		CompatibleTiers: allTiers,
		Features: []string{
			"1 invio al mese",
			"Template grafico dedicato",
			"Report aperture e click",
		},
	},
}
