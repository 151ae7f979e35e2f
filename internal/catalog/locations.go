package catalog

// Location is a rally and its stage names in game order.
type Location struct {
	Name   string
	Stages []string
}

// Locations is indexed by location number minus one.
var Locations = []Location{
	{"Rallye Monte-Carlo", []string{
		"La Bollène-Vésubie - Peïra Cava",
		"Peïra Cava - La Bollène-Vésubie",
		"La Bollène-Vésubie - Col de Turini",
		"Pra d'Alart",
		"La Maïris",
		"Baisse de Patronel",
		"Saint-Léger-les-Mélèzes - La Bâtie-Neuve",
		"La Bâtie-Neuve - Saint-Léger-les-Mélèzes",
		"Moissière",
		"Ancelle",
		"Ravin de Coste Belle",
		"Les Borels",
	}},
	{"Rally Sweden", []string{
		"Hof-Finnskog",
		"Åsnes",
		"Spikbrenna",
		"Lauksjøen",
		"Åslia",
		"Knapptjernet",
		"Vargasen",
		"Lövstaholm",
		"Älgsjön",
		"Ekshärad",
		"Stora Jangen",
		"Sunne",
	}},
	{"Guanajuato Rally México", []string{
		"El Chocolate",
		"Otates",
		"Ortega",
		"Las Minas",
		"Ibarrilla",
		"Derramadero",
		"El Brinco",
		"Guanajuatito",
		"Alfaro",
		"Mesa Cuata",
		"San Diego",
		"El Mosquito",
	}},
	{"Croatia Rally", []string{
		"Bliznec",
		"Trakošćan",
		"Vrbno",
		"Zagorska Sela",
		"Kumrovec",
		"Grdanjci",
		"Stojdraga",
		"Mali Lipovec",
		"Hartje",
		"Kostanjevac",
		"Krašić",
		"Petruš Vrh",
	}},
	{"Vodafone Rally de Portugal", []string{
		"Baião",
		"Caminha",
		"Fridão",
		"Marão",
		"Ponte de Lima",
		"Viana do Castelo",
		"Ervideiro",
		"Celeiro",
		"Touca",
		"Vila Boa",
		"Carrazedo",
		"Anjos",
	}},
	{"Rally Italia Sardegna", []string{
		"Rena Majore",
		"Monte Olia",
		"Littichedda",
		"Ala del Sardi",
		"Mamone",
		"Li Pinnenti",
		"Malti",
		"Bassacutena",
		"Bortigiadas",
		"Sa Mela",
		"Monte Muvri",
		"Monte Acuto",
	}},
	{"Safari Rally Kenya", []string{
		"Malewa",
		"Tarambete",
		"Moi North",
		"Marula",
		"Wileli",
		"Kingono",
		"Soysambu",
		"Mbaruk",
		"Sugunoi",
		"Nakuru",
		"Kanyawa",
		"Kanyawa - Nakura",
	}},
	{"Rally Estonia", []string{
		"Otepää",
		"Rebaste",
		"Nüpli",
		"Truuta",
		"Koigu",
		"Kooraste",
		"Elva",
		"Metsalaane",
		"Vahessaare",
		"Külaaseme",
		"Vissi",
		"Vellavere",
	}},
	{"SECTO Rally Finland", []string{
		"Leustu",
		"Lahdenkyla",
		"Saakoski",
		"Maahi",
		"Painna",
		"Peltola",
		"Paijala",
		"Ruokolahti",
		"Honkanen",
		"Venkajarvi",
		"Vehmas",
		"Hatanpaa",
	}},
	{"EKO ACROPOLIS Rally Greece", []string{
		"Gravia",
		"Prosilio",
		"Mariolata",
		"Karoutes",
		"Viniani",
		"Delphi",
		"Eptalofos",
		"Lilea",
		"Parnassós",
		"Bauxites",
		"Drosochori",
		"Amfissa",
	}},
	{"BIO BIO Rally Chile", []string{
		"Bio Bío",
		"Pulpería",
		"Río Lía",
		"María Las Cruces",
		"Las Paraguas",
		"Rere",
		"El Poñen",
		"Laja",
		"Yumbel",
		"Río Claro",
		"Hualqui",
		"Chivilingo",
	}},
	{"Central Europe Rally", []string{
		"Rouské",
		"Lukoveček",
		"Raztoka",
		"Žabárna",
		"Provodovice",
		"Chvalčov",
		"Vítová",
		"Brusné",
		"Libosváry",
		"Rusava",
		"Osíčko",
		"Příkazy",
	}},
	{"Forum8 Rally Japan", []string{
		"Lake Mikawa",
		"Kudarisawa",
		"Oninotaira",
		"Okuwacho",
		"Habu Dam",
		"Habucho",
		"Nenoue Plateau",
		"Tegano",
		"Higashino",
		"Hokono Lake",
		"Nenoue Highlands",
		"Nakatsugawa",
	}},
	{"Rally Mediterraneo", []string{
		"Asco",
		"Ponte",
		"Monte Cinto",
		"Albarello",
		"Capannace",
		"Serra Di Cuzzioli",
		"Maririe",
		"Poggiola",
		"Monte Alloradu",
		"Ravin de Finelio",
		"Cabanella",
		"Moltifao",
	}},
	{"Agon By AOC Rally Pacifico", []string{
		"Talao",
		"Talanghilirair",
		"SungaiKunit",
		"Sangir Balai Janggo",
		"South Solok",
		"Kebun Raya Solok",
		"Batukangkung",
		"Abai",
		"Moearaikoer",
		"Bidaralam",
		"Loeboekmalaka",
		"Gunung Tujuh",
	}},
	{"Fanatec Rally Oceania", []string{
		"Oakleigh",
		"Doctors Hill",
		"Mangapai",
		"Brynderwyn",
		"Taipuha",
		"Mareretu",
		"Waiwera",
		"Tahekeroa",
		"Noakes Hill",
		"Orewa",
		"Tahekeroa - Orewa",
		"Makarau",
	}},
	{"Rally Scandia", []string{
		"Holtjønn",
		"Hengeltjønn",
		"Fyresvatn",
		"Russvatn",
		"Tovsli",
		"Kottjønn",
		"Fordol",
		"Fyresdal",
		"Ljosdalstjønn",
		"Dagtrolltjønn",
		"Tovslioytjorn",
		"Bergsøytjønn",
	}},
	{"Rally Iberia", []string{
		"Santes Creus",
		"Valldossera",
		"Campdasens",
		"Pontils",
		"Montagut",
		"Aiguamúrcia",
		"Alforja",
		"Les Irles",
		"L'Argentera",
		"Les Voltes",
		"Montclar",
		"Botareli",
	}},
}
