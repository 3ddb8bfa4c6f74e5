package catalog

// HistorySections lists every history section in declaration order. The
// declaration order is the workflow order; the report order is
// HistoryReportOrder.
var HistorySections = []HistorySection{
	{
		Key:          MainComplaint,
		Label:        "Glavna težava / vodilni simptom (Kdaj, kje, kako, jakost, širjenje, lajšanje...)",
		ReportLabel:  "Glavna težava / vodilni simptom",
		NegativeText: "Trenutno brez specifične glavne težave.",
		Group:        GroupMainPreROS,
	},
	{
		Key:          CurrentIllness,
		Label:        "Sedanja bolezen (Podroben opis glavne težave, OPQRST, spremljevalni simptomi)",
		ReportLabel:  "Sedanja bolezen",
		NegativeText: "Brez novih akutnih težav, kroničnih poslabšanj ne navaja.",
		Group:        GroupMainPreROS,
	},
	{
		Key:          General,
		Label:        "Splošni simptomi (Počutje, apetit, teža, spanje, potenje, vročica)",
		ReportLabel:  "Splošni simptomi",
		NegativeText: "Počutje je stabilno, apetit, žeja in spanje so ustrezni. Zanika izgubo telesne teže, potenje, vročino, mrzlico in povečane bezgavke.",
		Group:        GroupROS,
	},
	{
		Key:          Endocrine,
		Label:        "Endokrini sistem (Ščitnica, žeja, potenje, telesna teža)",
		ReportLabel:  "Endokrini sistem",
		NegativeText: "Zanika težave s ščitnico, prekomerno žejo, potenje ali nenadne spremembe v telesni teži.",
		Group:        GroupROS,
	},
	{
		Key:          HeadNeck,
		Label:        "Glava in vrat (Glavobol, vid, sluh, žrelo)",
		ReportLabel:  "Glava in vrat",
		NegativeText: "Zanika glavobole. Sluh in vid sta brez posebnosti. Nos in sinusi so prehodni, žrelo pa je mirno.",
		Group:        GroupROS,
	},
	{
		Key:          Cardiovascular,
		Label:        "Obtočila (Bolečina v prsih, dispneja, palpitacije, edemi)",
		ReportLabel:  "Obtočila",
		NegativeText: "Zanika bolečine v prsih, dispnejo, palpitacije in edeme.",
		Group:        GroupROS,
	},
	{
		Key:          Respiratory,
		Label:        "Dihala (Kašelj, izmeček, dispneja, hemoptiza)",
		ReportLabel:  "Dihala",
		NegativeText: "Zanika dispnejo, kašelj, izmeček, hemoptizo in nočno potenje.",
		Group:        GroupROS,
	},
	{
		Key:          Breasts,
		Label:        "Dojke (Zatrdline, bolečina, izcedek)",
		ReportLabel:  "Dojke",
		NegativeText: "Redno samopregledovanje, brez zatrdlin, bolečin ali izcedkov.",
		Sex:          SexFemale,
		Group:        GroupROS,
	},
	{
		Key:          Gastrointestinal,
		Label:        "Prebavila (Apetit, bolečine, odvajanje, kri)",
		ReportLabel:  "Prebavila",
		NegativeText: "Apetit je normalen, abdominalnih bolečin ne navaja, odvajanje je redno in brez posebnosti.",
		Group:        GroupROS,
	},
	{
		Key:          Hematopoietic,
		Label:        "Hematopoetski sistem (Krvavitve, modrice, bezgavke)",
		ReportLabel:  "Hematopoetski sistem",
		NegativeText: "Zanika nagnjenost h krvavitvam ali modricam. Perifernih bezgavk ne zatipa.",
		Group:        GroupROS,
	},
	{
		Key:          Urogenital,
		Label:        "Sečila (Dizurija, nikturija, hematurija, inkontinenca)",
		ReportLabel:  "Sečila",
		NegativeText: "Zanika dizurijo, nikturijo, hematurijo in inkontinenco.",
		Group:        GroupROS,
	},
	{
		Key:          GenitalsMale,
		Label:        "Spolovila - moški (Libido, potenca, LUTS)",
		ReportLabel:  "Spolovila - moški",
		NegativeText: "Libido je ohranjen, erektilna funkcija je brez težav. Zanika težave z mikcijo v smislu LUTS.",
		Sex:          SexMale,
		Group:        GroupROS,
	},
	{
		Key:          GenitalsFemale,
		Label:        "Spolovila - ženska (Menstruacija, Ginekološki pregledi)",
		ReportLabel:  "Spolovila - ženska",
		NegativeText: "Menstrualni cikel je reden, ginekološko brez posebnosti.",
		Sex:          SexFemale,
		Group:        GroupROS,
	},
	{
		Key:          Musculoskeletal,
		Label:        "Gibala (Bolečine v sklepih/mišicah, otekline)",
		ReportLabel:  "Gibala",
		NegativeText: "Brez bolečin v sklepih ali mišicah, polno gibljiv, brez oteklin.",
		Group:        GroupROS,
	},
	{
		Key:          Neurological,
		Label:        "Nevrološki sistem (Vrtoglavica, krči, parestezije)",
		ReportLabel:  "Nevrološki sistem",
		NegativeText: "Zanika omotico, vrtoglavico, krče, parestezije ali motorične izpade.",
		Group:        GroupROS,
	},
	{
		Key:          Skin,
		Label:        "Koža, lasje, nohti (Izpuščaji, srbež, spremembe)",
		ReportLabel:  "Koža, lasje, nohti",
		NegativeText: "Zanika izpuščaje, srbež ali druge pomembnejše kožne spremembe. Lasišče in nohti so brez posebnosti.",
		Group:        GroupROS,
	},
	{
		Key:          ChildhoodIllnesses,
		Label:        "Otroške bolezni (Prebolele bolezni, cepljenje po shemi)",
		ReportLabel:  "Otroške bolezni",
		NegativeText: "Prebolel običajne otroške bolezni, cepljen po shemi.",
		Group:        GroupMainPostROS,
	},
	{
		Key:          PastIllnesses,
		Label:        "Prejšnje bolezni (Operacije, hospitalizacije, poškodbe, kronične bolezni)",
		ReportLabel:  "Prejšnje bolezni",
		NegativeText: "Zanika resnejše kronične bolezni, operacije ali hospitalizacije v odrasli dobi.",
		Group:        GroupMainPostROS,
	},
	{
		Key:          FamilyHistory,
		Label:        "Družinska anamneza (Starši, sorojenci, otroci, dedne bolezni)",
		ReportLabel:  "Družinska anamneza",
		NegativeText: "Družinske obremenjenosti ne navaja.",
		Group:        GroupMainPostROS,
	},
	{
		Key:          Medications,
		Label:        "Zdravila in medicinski pripomočki (Ime, jakost, odmerek, režim jemanja)",
		ReportLabel:  "Zdravila in medicinski pripomočki",
		NegativeText: "Ne jemlje redne terapije in ne uporablja medicinskih pripomočkov.",
		Group:        GroupMainPostROS,
	},
	{
		Key:          Vaccinations,
		Label:        "Cepljenja in preventivne dejavnosti (Obvezna, priporočena, presejalni programi SVIT/DORA/ZORA)",
		ReportLabel:  "Cepljenja in preventivne dejavnosti",
		NegativeText: "Redno cepljen po nacionalnem programu, udeležuje se presejalnih programov.",
		Group:        GroupMainPostROS,
	},
	{
		Key:          Allergies,
		Label:        "Alergije (Zdravila, hrana, okolje, opis reakcije)",
		ReportLabel:  "Alergije",
		NegativeText: "Zanika alergije na zdravila, hrano ali druge znane alergene.",
		Group:        GroupMainPostROS,
	},
	{
		Key:          Addictions,
		Label:        "Zasvojenosti in razvade (Kajenje, alkohol, droge, igre na srečo)",
		ReportLabel:  "Zasvojenosti in razvade",
		NegativeText: "Zanika kajenje, prekomerno pitje alkohola ali uporabo nedovoljenih substanc.",
		Group:        GroupMainPostROS,
	},
	{
		Key:          SocialHistory,
		Label:        "Socialna anamneza (Družina, poklic, bivalne razmere, hobiji)",
		ReportLabel:  "Socialna anamneza",
		NegativeText: "Socialno stanje je urejeno, bivalne razmere so primerne.",
		Group:        GroupMainPostROS,
	},
}

// ExamSections lists every physical-exam section in declaration order.
var ExamSections = []ExamSection{
	{
		Key:          ExamGeneral,
		Label:        "Splošni vtis",
		ReportLabel:  "Splošni vtis",
		NegativeText: "Neprizadet, buden, orientiran v času, prostoru in situaciji. Primerno odgovarja na vprašanja. Koža je normalno obarvana, suha, topla in primernega turgorja, brez izpuščajev ali ekhimoz. Nohti so brez posebnosti. Edemov ni. Perifernih bezgavk ne zatipam.",
	},
	{
		Key:          ExamHead,
		Label:        "Glava",
		ReportLabel:  "Glava",
		NegativeText: "Glava je primerno oblikovana. Palpatorno je skalp neboleč. Očesni reži sta enako široki, zrkli mirujeta v srednji črti, bulbomotorika je primerna. Zenici so okrogle, enake in fotoreaktivne. Veznici sta rožnati. Sluh je orientacijsko brez posebnosti. Nos je prehoden. Ustna sluznica je rožnata, jezik vlažen, žrelo ni pordelo.",
		Subfindings: []Subfinding{
			{Key: "dentalCaries", Label: "Zobna gniloba/parodontoza", ReportText: "Prisotna zobna gniloba/parodontoza."},
			{Key: "refractiveErrors", Label: "Refrakcijske napake vida", ReportText: "Ugotovljene refrakcijske napake vida (nosi očala/leče)."},
			{Key: "upperAirwayInfection", Label: "Vnetje zgornjih dihal", ReportText: "Prisotni znaki vnetja zgornjih dihal (pordelo žrelo, izcedek iz nosu)."},
		},
	},
	{
		Key:          ExamNeck,
		Label:        "Vrat",
		ReportLabel:  "Vrat",
		NegativeText: "Vrat je aktivno in pasivno gibljiv v vseh smereh, brez meningealnih znakov. Ščitnica ni tipno povečana. Vratne vene niso nabrekle. Karotidna pulza je simetrično tipna, brez slišnih šumov.",
		Subfindings: []Subfinding{
			{Key: "enlargedThyroid", Label: "Povečana ščitnica", ReportText: "Ščitnica je tipno povečana."},
			{Key: "jvd", Label: "Nabrekle vratne vene", ReportText: "Vratne vene so nabrekle."},
			{Key: "meningealSigns", Label: "Meningealni znaki", ReportText: "Prisotni meningealni znaki."},
		},
	},
	{
		Key:          ExamChest,
		Label:        "Prsni koš / Pljuča",
		ReportLabel:  "Prsni koš / Pljuča",
		NegativeText: "Prsni koš je normalne oblike, simetrično pomičen z dihanjem. Dihanje je normalno, slišno, brez adventivnih fenomenov. Poklep nad pljuči je sonoren. Pektoralni fremitus je primeren.",
		Subfindings: []Subfinding{
			{Key: "crackles", Label: "Slišni poki", ReportText: "Avskultatorno so slišni poki."},
			{Key: "wheezes", Label: "Slišni piski", ReportText: "Avskultatorno so slišni piski."},
			{Key: "tachypnea", Label: "Tahipneja", ReportText: "Dihanje je pospešeno (tahipneja)."},
		},
	},
	{
		Key:          ExamHeart,
		Label:        "Srce in ožilje",
		ReportLabel:  "Srce in ožilje",
		NegativeText: "Srčna akcija je ritmična, toni so jasni, šumov ni slišati. Iktus je tipen v 5. medrebrnem prostoru. Periferni pulzi so tipni in simetrični. Kapilarni povratek je krajši od 2 sekund.",
		Subfindings: []Subfinding{
			{Key: "murmur", Label: "Slišni šumi", ReportText: "Prisoten je srčni šum."},
			{Key: "arrhythmia", Label: "Neritmična akcija", ReportText: "Akcija srca je neritmična."},
			{Key: "weakPulses", Label: "Slabše tipni pulzi", ReportText: "Periferni pulzi so slabše tipni."},
		},
	},
	{
		Key:          ExamAbdomen,
		Label:        "Trebuh (Abdomen)",
		ReportLabel:  "Trebuh",
		NegativeText: "Trebuh je v nivoju prsnega koša, mehak in na palpacijo neboleč. Jetra in vranica nista tipna. Peristaltika je slišna. Ledveni poklep je obojestransko neboleč.",
		Subfindings: []Subfinding{
			{Key: "tenderness", Label: "Bolečnost na pritisk", ReportText: "Trebuh je boleč na palpacijo."},
			{Key: "masses", Label: "Tipne rezistence", ReportText: "Tipne so patološke rezistence."},
		},
	},
	{
		Key:          ExamLimbs,
		Label:        "Gibala / Okončine",
		ReportLabel:  "Gibala / Okončine",
		NegativeText: "Hoja je normalna. Okončine in hrbtenica so primerno oblikovani in gibljivi. Presejalni test GALS je v mejah normale.",
	},
}
