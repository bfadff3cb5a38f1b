package catalog

// tiers is the literal catalog. Prices are whole euro amounts and must stay
// monotonically non-decreasing from base to premium within each tier.
var tiers = map[Tier]TierData{
	TierStarter: {
		Tier:        TierStarter,
		Name:        "Starter",
		Description: "Il sito vetrina essenziale per attività locali che vogliono essere trovate online.",
		TargetTags:  []string{"ristoranti", "bar", "artigiani", "liberi professionisti"},
		Levels: LevelSet{
			Base: LevelData{
				Level:       LevelBase,
				Name:        "Starter Base",
				Description: "Presenza online pulita e veloce, pronta in pochi giorni.",
				Price:       850,
				Features: FeatureBundle{
					Pages: []string{
						"Fino a 3 pagine (Home, Chi siamo, Contatti)",
						"Testi ottimizzati forniti dal cliente",
						"Galleria fotografica fino a 12 immagini",
					},
					Technical: []string{
						"Design responsive mobile-first",
						"Certificato SSL e hosting primo anno incluso",
						"Modulo contatti con notifica email",
					},
					Support: []string{
						"Assistenza email 2 mesi",
					},
					Integrations: []string{
						"Google Maps",
						"Collegamento ai profili social",
					},
					Marketing: []string{
						"SEO di base (meta tag, sitemap)",
					},
				},
				Revisions:       2,
				Support:         &SupportSpec{Duration: "2 mesi", Type: "email"},
				RealizationTime: "7-10 giorni lavorativi",
				Tags:            NewFeatureTagSet(TagGoogleMyBusiness),
			},
			Standard: LevelData{
				Level:       LevelStandard,
				Name:        "Starter Standard",
				Description: "Il sito vetrina completo, con blog e scheda Google curata.",
				Price:       1250,
				Features: FeatureBundle{
					Pages: []string{
						"Fino a 5 pagine",
						"Pagina servizi dettagliata",
						"Blog con 2 articoli di lancio",
						"Galleria fotografica fino a 30 immagini",
					},
					Technical: []string{
						"Design responsive mobile-first",
						"Certificato SSL e hosting primo anno incluso",
						"Modulo contatti avanzato con campi personalizzati",
						"Ottimizzazione velocità (Core Web Vitals)",
					},
					Support: []string{
						"Assistenza email 4 mesi",
						"1 sessione di formazione sull'uso del sito",
					},
					Integrations: []string{
						"Google Maps",
						"Google My Business: configurazione completa",
						"Collegamento ai profili social",
					},
					Marketing: []string{
						"SEO di base (meta tag, sitemap)",
						"Impostazione Google Analytics",
					},
				},
				Revisions:       3,
				Training:        &TrainingSpec{Sessions: 1, Duration: "1 ora"},
				Support:         &SupportSpec{Duration: "4 mesi", Type: "email"},
				RealizationTime: "2-3 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagGoogleMyBusiness, TagAnalytics, TagTraining,
				),
			},
			Premium: LevelData{
				Level:       LevelPremium,
				Name:        "Starter Premium",
				Description: "La vetrina che lavora per te: menù QR, WhatsApp e newsletter inclusi.",
				Price:       1650,
				Features: FeatureBundle{
					Pages: []string{
						"Fino a 8 pagine",
						"Blog con 4 articoli di lancio",
						"Menù o listino digitale con QR code",
						"Galleria fotografica illimitata",
					},
					Technical: []string{
						"Design responsive mobile-first",
						"Certificato SSL e hosting primo anno incluso",
						"Ottimizzazione velocità (Core Web Vitals)",
						"Backup automatici settimanali",
					},
					Support: []string{
						"Assistenza prioritaria 6 mesi",
						"2 sessioni di formazione sull'uso del sito",
					},
					Integrations: []string{
						"Google Maps",
						"Google My Business: configurazione completa",
						"Pulsante WhatsApp Business",
						"Collegamento ai profili social",
					},
					Marketing: []string{
						"SEO di base (meta tag, sitemap)",
						"Impostazione Google Analytics",
						"Modulo iscrizione newsletter",
					},
				},
				Revisions:       4,
				Training:        &TrainingSpec{Sessions: 2, Duration: "1 ora"},
				Support:         &SupportSpec{Duration: "6 mesi", Type: "prioritaria"},
				RealizationTime: "3-4 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagQRMenu, TagGoogleMyBusiness, TagWhatsApp,
					TagAnalytics, TagNewsletter, TagTraining, TagPrioritySupport,
				),
			},
		},
	},
	TierPro: {
		Tier:        TierPro,
		Name:        "Pro",
		Description: "Il sito professionale con prenotazioni online per chi lavora su appuntamento.",
		TargetTags:  []string{"studi medici", "parrucchieri", "palestre", "consulenti"},
		Levels: LevelSet{
			Base: LevelData{
				Level:       LevelBase,
				Name:        "Pro Base",
				Description: "Sito professionale con sistema di prenotazione integrato.",
				Price:       1800,
				Features: FeatureBundle{
					Pages: []string{
						"Fino a 8 pagine",
						"Pagine servizio individuali",
						"Blog configurato",
					},
					Technical: []string{
						"Design personalizzato sulla brand identity",
						"Sistema prenotazioni con calendario",
						"Certificato SSL e hosting primo anno incluso",
						"Ottimizzazione velocità (Core Web Vitals)",
					},
					Support: []string{
						"Assistenza email 6 mesi",
						"1 sessione di formazione",
					},
					Integrations: []string{
						"Google Calendar per le prenotazioni",
						"Google My Business: configurazione completa",
						"Pulsante WhatsApp Business",
					},
					Marketing: []string{
						"SEO di base (meta tag, sitemap)",
						"Impostazione Google Analytics",
					},
				},
				Revisions:       3,
				Training:        &TrainingSpec{Sessions: 1, Duration: "1 ora e mezza"},
				Support:         &SupportSpec{Duration: "6 mesi", Type: "email"},
				RealizationTime: "3-4 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagBookingSystem, TagGoogleMyBusiness, TagWhatsApp,
					TagAnalytics, TagTraining,
				),
			},
			Standard: LevelData{
				Level:       LevelStandard,
				Name:        "Pro Standard",
				Description: "Prenotazioni, promemoria automatici e contenuti curati dal nostro team.",
				Price:       2400,
				Features: FeatureBundle{
					Pages: []string{
						"Fino a 12 pagine",
						"Blog con 4 articoli di lancio",
						"Pagina team con profili individuali",
					},
					Technical: []string{
						"Design personalizzato sulla brand identity",
						"Sistema prenotazioni con promemoria email/SMS",
						"Area clienti con storico appuntamenti",
						"Backup automatici settimanali",
					},
					Support: []string{
						"Assistenza prioritaria 8 mesi",
						"2 sessioni di formazione",
					},
					Integrations: []string{
						"Google Calendar per le prenotazioni",
						"Google My Business: configurazione completa",
						"Pulsante WhatsApp Business",
						"Newsletter con automazione di benvenuto",
					},
					Marketing: []string{
						"SEO avanzata (ricerca parole chiave)",
						"Impostazione Google Analytics",
						"Campagna Google Ads di lancio (setup)",
					},
				},
				Revisions:       4,
				Training:        &TrainingSpec{Sessions: 2, Duration: "1 ora e mezza"},
				Support:         &SupportSpec{Duration: "8 mesi", Type: "prioritaria"},
				RealizationTime: "4-6 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagBookingSystem, TagGoogleMyBusiness, TagWhatsApp,
					TagAnalytics, TagNewsletter, TagSEOAdvanced, TagTraining,
					TagPrioritySupport,
				),
			},
			Premium: LevelData{
				Level:       LevelPremium,
				Name:        "Pro Premium",
				Description: "La soluzione completa: multilingua, pagamenti online e marketing continuativo.",
				Price:       3200,
				Features: FeatureBundle{
					Pages: []string{
						"Pagine illimitate",
						"Blog con 8 articoli di lancio",
						"Sito multilingua (2 lingue incluse)",
					},
					Technical: []string{
						"Design personalizzato sulla brand identity",
						"Sistema prenotazioni con pagamento anticipato",
						"Area clienti con storico appuntamenti",
						"Backup automatici giornalieri",
					},
					Support: []string{
						"Assistenza prioritaria 12 mesi",
						"3 sessioni di formazione",
					},
					Integrations: []string{
						"Google Calendar per le prenotazioni",
						"Pagamenti online (Stripe/PayPal)",
						"Google My Business: configurazione completa",
						"Pulsante WhatsApp Business",
						"Newsletter con automazioni avanzate",
					},
					Marketing: []string{
						"SEO avanzata (ricerca parole chiave)",
						"Impostazione Google Analytics",
						"Campagna Google Ads di lancio (setup e primo mese)",
					},
				},
				Revisions:       5,
				Training:        &TrainingSpec{Sessions: 3, Duration: "1 ora e mezza"},
				Support:         &SupportSpec{Duration: "12 mesi", Type: "prioritaria"},
				RealizationTime: "6-8 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagBookingSystem, TagGoogleMyBusiness, TagWhatsApp,
					TagAnalytics, TagNewsletter, TagSEOAdvanced, TagMultilingual,
					TagOnlinePayments, TagTraining, TagPrioritySupport,
					TagExtendedSupport,
				),
			},
		},
	},
	TierEcommerce: {
		Tier:        TierEcommerce,
		Name:        "Ecommerce",
		Description: "Il negozio online completo, dal catalogo prodotti alla fidelizzazione dei clienti.",
		TargetTags:  []string{"negozi", "produttori locali", "brand emergenti"},
		Levels: LevelSet{
			Base: LevelData{
				Level:       LevelBase,
				Name:        "Ecommerce Base",
				Description: "Il negozio online pronto a vendere, con catalogo e pagamenti sicuri.",
				Price:       3500,
				Features: FeatureBundle{
					Pages: []string{
						"Catalogo fino a 50 prodotti",
						"Pagine istituzionali complete",
						"Blog configurato",
					},
					Technical: []string{
						"Piattaforma ecommerce con carrello e checkout",
						"Pagamenti online (Stripe/PayPal)",
						"Gestione magazzino e varianti prodotto",
						"Certificato SSL e hosting primo anno incluso",
					},
					Support: []string{
						"Assistenza prioritaria 6 mesi",
						"2 sessioni di formazione sulla gestione ordini",
					},
					Integrations: []string{
						"Sistema prenotazioni per ritiro in negozio",
						"Corrieri con tracking automatico",
						"Google My Business: configurazione completa",
						"Pulsante WhatsApp Business",
					},
					Marketing: []string{
						"SEO di base per schede prodotto",
						"Impostazione Google Analytics 4 ecommerce",
					},
				},
				Revisions:       4,
				Training:        &TrainingSpec{Sessions: 2, Duration: "2 ore"},
				Support:         &SupportSpec{Duration: "6 mesi", Type: "prioritaria"},
				RealizationTime: "6-8 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagProductCatalog, TagOnlinePayments, TagBookingSystem,
					TagGoogleMyBusiness, TagWhatsApp, TagAnalytics, TagTraining,
					TagPrioritySupport,
				),
			},
			Standard: LevelData{
				Level:       LevelStandard,
				Name:        "Ecommerce Standard",
				Description: "Catalogo ampio, automazioni carrello e newsletter per vendere di più.",
				Price:       4800,
				Features: FeatureBundle{
					Pages: []string{
						"Catalogo fino a 200 prodotti",
						"Blog con 4 articoli di lancio",
						"Pagine landing per promozioni stagionali",
					},
					Technical: []string{
						"Piattaforma ecommerce con carrello e checkout",
						"Pagamenti online (Stripe/PayPal/Klarna)",
						"Recupero carrelli abbandonati",
						"Codici sconto e promozioni programmabili",
						"Backup automatici giornalieri",
					},
					Support: []string{
						"Assistenza prioritaria 8 mesi",
						"3 sessioni di formazione sulla gestione ordini",
					},
					Integrations: []string{
						"Sistema prenotazioni per ritiro in negozio",
						"Corrieri con tracking automatico",
						"Newsletter con automazioni post-acquisto",
						"Google My Business: configurazione completa",
						"Pulsante WhatsApp Business",
					},
					Marketing: []string{
						"SEO avanzata per schede prodotto",
						"Impostazione Google Analytics 4 ecommerce",
						"Feed Google Shopping e Meta catalogo",
					},
				},
				Revisions:       5,
				Training:        &TrainingSpec{Sessions: 3, Duration: "2 ore"},
				Support:         &SupportSpec{Duration: "8 mesi", Type: "prioritaria"},
				RealizationTime: "8-10 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagProductCatalog, TagOnlinePayments, TagBookingSystem,
					TagGoogleMyBusiness, TagWhatsApp, TagAnalytics, TagNewsletter,
					TagSEOAdvanced, TagTraining, TagPrioritySupport,
				),
			},
			Premium: LevelData{
				Level:       LevelPremium,
				Name:        "Ecommerce Premium",
				Description: "Il flagship store: multilingua, programma fedeltà e un anno di assistenza dedicata.",
				Price:       6500,
				Features: FeatureBundle{
					Pages: []string{
						"Catalogo prodotti illimitato",
						"Blog con 8 articoli di lancio",
						"Sito multilingua (2 lingue incluse)",
						"Pagine landing per promozioni stagionali",
					},
					Technical: []string{
						"Piattaforma ecommerce con carrello e checkout",
						"Pagamenti online (Stripe/PayPal/Klarna)",
						"Recupero carrelli abbandonati",
						"Programma fedeltà con punti e premi",
						"Backup automatici giornalieri",
					},
					Support: []string{
						"Assistenza dedicata 12 mesi con referente unico",
						"4 sessioni di formazione sulla gestione ordini",
					},
					Integrations: []string{
						"Sistema prenotazioni per ritiro in negozio",
						"Corrieri con tracking automatico",
						"Newsletter con automazioni post-acquisto e fedeltà",
						"Marketplace (Amazon/eBay) con sincronizzazione catalogo",
						"Google My Business: configurazione completa",
						"Pulsante WhatsApp Business",
					},
					Marketing: []string{
						"SEO avanzata per schede prodotto",
						"Impostazione Google Analytics 4 ecommerce",
						"Feed Google Shopping e Meta catalogo",
						"Campagna Google Ads di lancio (setup e primo mese)",
					},
				},
				Revisions:       6,
				Training:        &TrainingSpec{Sessions: 4, Duration: "2 ore"},
				Support:         &SupportSpec{Duration: "12 mesi", Type: "dedicata"},
				RealizationTime: "10-12 settimane",
				Tags: NewFeatureTagSet(
					TagBlog, TagProductCatalog, TagOnlinePayments, TagBookingSystem,
					TagGoogleMyBusiness, TagWhatsApp, TagAnalytics, TagNewsletter,
					TagSEOAdvanced, TagMultilingual, TagLoyaltySystem, TagTraining,
					TagPrioritySupport, TagExtendedSupport,
				),
			},
		},
	},
}
