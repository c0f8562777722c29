package comuni

// defaultEntries is the compiled-in municipality table: regional and
// provincial capitals, other major municipalities, and Z-coded foreign
// countries. A representative subset of the official Belfiore registry;
// extend via NewInMemoryWithEntries when more coverage is needed.
var defaultEntries = []Entry{
	{Code: "A944", Name: "BARI", Province: "BA"},
	{Code: "A952", Name: "BARLETTA", Province: "BT"},
	{Code: "B354", Name: "BOLOGNA", Province: "BO"},
	{Code: "B157", Name: "BOLZANO", Province: "BZ"},
	{Code: "B180", Name: "BRESCIA", Province: "BS"},
	{Code: "B428", Name: "CAGLIARI", Province: "CA"},
	{Code: "B963", Name: "CAMPOBASSO", Province: "CB"},
	{Code: "C351", Name: "CATANZARO", Province: "CZ"},
	{Code: "D612", Name: "FIRENZE", Province: "FI"},
	{Code: "E041", Name: "GENOVA", Province: "GE"},
	{Code: "E625", Name: "L'AQUILA", Province: "AQ"},
	{Code: "E463", Name: "LATINA", Province: "LT"},
	{Code: "F205", Name: "MILANO", Province: "MI"},
	{Code: "F839", Name: "NAPOLI", Province: "NA"},
	{Code: "G273", Name: "PALERMO", Province: "PA"},
	{Code: "G337", Name: "PARMA", Province: "PR"},
	{Code: "G478", Name: "PERUGIA", Province: "PG"},
	{Code: "G482", Name: "PESARO", Province: "PU"},
	{Code: "G535", Name: "PIACENZA", Province: "PC"},
	{Code: "G702", Name: "POTENZA", Province: "PZ"},
	{Code: "H223", Name: "REGGIO CALABRIA", Province: "RC"},
	{Code: "H224", Name: "REGGIO EMILIA", Province: "RE"},
	{Code: "H501", Name: "ROMA", Province: "RM"},
	{Code: "H703", Name: "SALERNO", Province: "SA"},
	{Code: "I452", Name: "TORINO", Province: "TO"},
	{Code: "I726", Name: "TRENTO", Province: "TN"},
	{Code: "I403", Name: "TRIESTE", Province: "TS"},
	{Code: "L219", Name: "UDINE", Province: "UD"},
	{Code: "L736", Name: "VENEZIA", Province: "VE"},
	{Code: "L781", Name: "VERONA", Province: "VR"},
	{Code: "A271", Name: "ANCONA", Province: "AN"},
	{Code: "A515", Name: "AOSTA", Province: "AO"},
	{Code: "A052", Name: "AGRIGENTO", Province: "AG"},
	{Code: "A119", Name: "ALESSANDRIA", Province: "AL"},
	{Code: "A399", Name: "AREZZO", Province: "AR"},
	{Code: "A479", Name: "ASCOLI PICENO", Province: "AP"},
	{Code: "A662", Name: "ASTI", Province: "AT"},
	{Code: "A669", Name: "AVELLINO", Province: "AV"},
	{Code: "B111", Name: "BELLUNO", Province: "BL"},
	{Code: "B041", Name: "BENEVENTO", Province: "BN"},
	{Code: "B249", Name: "BERGAMO", Province: "BG"},
	{Code: "B832", Name: "BIELLA", Province: "BI"},
	{Code: "C219", Name: "CALTANISSETTA", Province: "CL"},
	{Code: "C352", Name: "CATANIA", Province: "CT"},
	{Code: "C632", Name: "CHIETI", Province: "CH"},
	{Code: "C858", Name: "COMO", Province: "CO"},
	{Code: "C904", Name: "COSENZA", Province: "CS"},
	{Code: "C933", Name: "CREMONA", Province: "CR"},
	{Code: "C980", Name: "CROTONE", Province: "KR"},
	{Code: "D009", Name: "CUNEO", Province: "CN"},
	{Code: "D258", Name: "ENNA", Province: "EN"},
	{Code: "D461", Name: "FERRARA", Province: "FE"},
	{Code: "D643", Name: "FOGGIA", Province: "FG"},
	{Code: "D705", Name: "FORLI'", Province: "FC"},
	{Code: "D791", Name: "FROSINONE", Province: "FR"},
	{Code: "E098", Name: "GORIZIA", Province: "GO"},
	{Code: "E205", Name: "GROSSETO", Province: "GR"},
	{Code: "E289", Name: "IMPERIA", Province: "IM"},
	{Code: "E335", Name: "ISERNIA", Province: "IS"},
	{Code: "E473", Name: "LA SPEZIA", Province: "SP"},
	{Code: "E506", Name: "LECCE", Province: "LE"},
	{Code: "E507", Name: "LECCO", Province: "LC"},
	{Code: "E648", Name: "LIVORNO", Province: "LI"},
	{Code: "E704", Name: "LODI", Province: "LO"},
	{Code: "E715", Name: "LUCCA", Province: "LU"},
	{Code: "E785", Name: "MACERATA", Province: "MC"},
	{Code: "E835", Name: "MANTOVA", Province: "MN"},
	{Code: "E877", Name: "MASSA", Province: "MS"},
	{Code: "E891", Name: "MATERA", Province: "MT"},
	{Code: "E956", Name: "MESSINA", Province: "ME"},
	{Code: "F161", Name: "MODENA", Province: "MO"},
	{Code: "F770", Name: "NOVARA", Province: "NO"},
	{Code: "F809", Name: "NUORO", Province: "NU"},
	{Code: "F844", Name: "OLBIA", Province: "SS"},
	{Code: "F848", Name: "ORISTANO", Province: "OR"},
	{Code: "G126", Name: "PADOVA", Province: "PD"},
	{Code: "G388", Name: "PAVIA", Province: "PV"},
	{Code: "G628", Name: "PISA", Province: "PI"},
	{Code: "G636", Name: "PISTOIA", Province: "PT"},
	{Code: "G713", Name: "PORDENONE", Province: "PN"},
	{Code: "G786", Name: "PRATO", Province: "PO"},
	{Code: "H141", Name: "RAGUSA", Province: "RG"},
	{Code: "H163", Name: "RAVENNA", Province: "RA"},
	{Code: "H282", Name: "RIETI", Province: "RI"},
	{Code: "H294", Name: "RIMINI", Province: "RN"},
	{Code: "H612", Name: "ROVIGO", Province: "RO"},
	{Code: "I119", Name: "SASSARI", Province: "SS"},
	{Code: "I138", Name: "SAVONA", Province: "SV"},
	{Code: "I329", Name: "SIENA", Province: "SI"},
	{Code: "I356", Name: "SIRACUSA", Province: "SR"},
	{Code: "I362", Name: "SONDRIO", Province: "SO"},
	{Code: "I588", Name: "TARANTO", Province: "TA"},
	{Code: "I625", Name: "TERAMO", Province: "TE"},
	{Code: "I632", Name: "TERNI", Province: "TR"},
	{Code: "I785", Name: "TRAPANI", Province: "TP"},
	{Code: "I819", Name: "TREVISO", Province: "TV"},
	{Code: "L049", Name: "VARESE", Province: "VA"},
	{Code: "L378", Name: "VERBANIA", Province: "VB"},
	{Code: "L380", Name: "VERCELLI", Province: "VC"},
	{Code: "L565", Name: "VICENZA", Province: "VI"},
	{Code: "L682", Name: "VITERBO", Province: "VT"},
	{Code: "M297", Name: "VIBO VALENTIA", Province: "VV"},
	{Code: "A089", Name: "ALBANO LAZIALE", Province: "RM"},
	{Code: "B715", Name: "BUSTO ARSIZIO", Province: "VA"},
	{Code: "C129", Name: "CAIVANO", Province: "NA"},
	{Code: "C573", Name: "CESENA", Province: "FC"},
	{Code: "C675", Name: "CINISELLO BALSAMO", Province: "MI"},
	{Code: "D969", Name: "GIUGLIANO IN CAMPANIA", Province: "NA"},
	{Code: "E256", Name: "GUIDONIA MONTECELIO", Province: "RM"},
	{Code: "E415", Name: "JESOLO", Province: "VE"},
	{Code: "F158", Name: "MESTRE", Province: "VE"},
	{Code: "F152", Name: "MODICA", Province: "RG"},
	{Code: "F240", Name: "MOLFETTA", Province: "BA"},
	{Code: "F257", Name: "MONCALIERI", Province: "TO"},
	{Code: "F280", Name: "MONFALCONE", Province: "GO"},
	{Code: "F299", Name: "MONOPOLI", Province: "BA"},
	{Code: "F309", Name: "MONREALE", Province: "PA"},
	{Code: "F329", Name: "MONTEBELLUNA", Province: "TV"},
	{Code: "F537", Name: "MONTESILVANO", Province: "PE"},
	{Code: "F656", Name: "NETTUNO", Province: "RM"},
	{Code: "F799", Name: "NOCERA INFERIORE", Province: "SA"},
	{Code: "G224", Name: "PAGANI", Province: "SA"},
	{Code: "G393", Name: "PATERNÒ", Province: "CT"},
	{Code: "G568", Name: "PIOMBINO", Province: "LI"},
	{Code: "G687", Name: "POMIGLIANO D'ARCO", Province: "NA"},
	{Code: "G693", Name: "POMPEI", Province: "NA"},
	{Code: "G716", Name: "PORICI", Province: "NA"},
	{Code: "G795", Name: "POZZUOLI", Province: "NA"},
	{Code: "G902", Name: "QUARTU SANT'ELENA", Province: "CA"},
	{Code: "H727", Name: "SAN BENEDETTO DEL TRONTO", Province: "AP"},
	{Code: "H785", Name: "SAN DONÀ DI PIAVE", Province: "VE"},
	{Code: "H798", Name: "SAN GIOVANNI ROTONDO", Province: "FG"},
	{Code: "I073", Name: "SANREMO", Province: "IM"},
	{Code: "I072", Name: "SAN SEVERO", Province: "FG"},
	{Code: "I234", Name: "SESTO SAN GIOVANNI", Province: "MI"},
	{Code: "L698", Name: "VIAREGGIO", Province: "LU"},
	{Code: "L840", Name: "VIGEVANO", Province: "PV"},
	{Code: "M082", Name: "VITTORIA", Province: "RG"},
	{Code: "Z100", Name: "ALBANIA", Province: "EE"},
	{Code: "Z102", Name: "ANDORRA", Province: "EE"},
	{Code: "Z103", Name: "AUSTRIA", Province: "EE"},
	{Code: "Z104", Name: "BELGIO", Province: "EE"},
	{Code: "Z106", Name: "BULGARIA", Province: "EE"},
	{Code: "Z107", Name: "DANIMARCA", Province: "EE"},
	{Code: "Z108", Name: "FINLANDIA", Province: "EE"},
	{Code: "Z109", Name: "FRANCIA", Province: "EE"},
	{Code: "Z110", Name: "GERMANIA", Province: "EE"},
	{Code: "Z112", Name: "REGNO UNITO", Province: "EE"},
	{Code: "Z113", Name: "GRECIA", Province: "EE"},
	{Code: "Z114", Name: "IRLANDA", Province: "EE"},
	{Code: "Z115", Name: "ISLANDA", Province: "EE"},
	{Code: "Z116", Name: "LIECHTENSTEIN", Province: "EE"},
	{Code: "Z117", Name: "LUSSEMBURGO", Province: "EE"},
	{Code: "Z118", Name: "MALTA", Province: "EE"},
	{Code: "Z119", Name: "MONACO", Province: "EE"},
	{Code: "Z120", Name: "NORVEGIA", Province: "EE"},
	{Code: "Z121", Name: "PAESI BASSI", Province: "EE"},
	{Code: "Z122", Name: "POLONIA", Province: "EE"},
	{Code: "Z123", Name: "PORTOGALLO", Province: "EE"},
	{Code: "Z124", Name: "ROMANIA", Province: "EE"},
	{Code: "Z125", Name: "SAN MARINO", Province: "EE"},
	{Code: "Z126", Name: "SPAGNA", Province: "EE"},
	{Code: "Z127", Name: "SVEZIA", Province: "EE"},
	{Code: "Z128", Name: "SVIZZERA", Province: "EE"},
	{Code: "Z129", Name: "UNGHERIA", Province: "EE"},
	{Code: "Z130", Name: "UCRAINA", Province: "EE"},
	{Code: "Z131", Name: "RUSSIA", Province: "EE"},
	{Code: "Z132", Name: "ESTONIA", Province: "EE"},
	{Code: "Z133", Name: "LETTONIA", Province: "EE"},
	{Code: "Z134", Name: "LITUANIA", Province: "EE"},
	{Code: "Z135", Name: "CROAZIA", Province: "EE"},
	{Code: "Z136", Name: "SLOVENIA", Province: "EE"},
	{Code: "Z138", Name: "MACEDONIA", Province: "EE"},
	{Code: "Z139", Name: "MOLDAVIA", Province: "EE"},
	{Code: "Z140", Name: "SLOVACCHIA", Province: "EE"},
	{Code: "Z149", Name: "REPUBBLICA CECA", Province: "EE"},
	{Code: "Z150", Name: "SERBIA", Province: "EE"},
	{Code: "Z153", Name: "BIELORUSSIA", Province: "EE"},
	{Code: "Z154", Name: "BOSNIA ERZEGOVINA", Province: "EE"},
	{Code: "Z158", Name: "MONTENEGRO", Province: "EE"},
	{Code: "Z159", Name: "KOSOVO", Province: "EE"},
	{Code: "Z200", Name: "EGITTO", Province: "EE"},
	{Code: "Z203", Name: "LIBIA", Province: "EE"},
	{Code: "Z204", Name: "MAROCCO", Province: "EE"},
	{Code: "Z205", Name: "NIGERIA", Province: "EE"},
	{Code: "Z208", Name: "SENEGAL", Province: "EE"},
	{Code: "Z210", Name: "GHANA", Province: "EE"},
	{Code: "Z211", Name: "COSTA D'AVORIO", Province: "EE"},
	{Code: "Z215", Name: "SOMALIA", Province: "EE"},
	{Code: "Z217", Name: "ETIOPIA", Province: "EE"},
	{Code: "Z218", Name: "ERITREA", Province: "EE"},
	{Code: "Z219", Name: "SUDAFRICA", Province: "EE"},
	{Code: "Z229", Name: "TUNISIA", Province: "EE"},
	{Code: "Z235", Name: "CAMERUN", Province: "EE"},
	{Code: "Z243", Name: "ALGERIA", Province: "EE"},
	{Code: "Z300", Name: "AFGHANISTAN", Province: "EE"},
	{Code: "Z301", Name: "ARABIA SAUDITA", Province: "EE"},
	{Code: "Z302", Name: "BAHREIN", Province: "EE"},
	{Code: "Z303", Name: "BANGLADESH", Province: "EE"},
	{Code: "Z304", Name: "MYANMAR", Province: "EE"},
	{Code: "Z306", Name: "CINA", Province: "EE"},
	{Code: "Z307", Name: "CIPRO", Province: "EE"},
	{Code: "Z308", Name: "COREA DEL NORD", Province: "EE"},
	{Code: "Z309", Name: "COREA DEL SUD", Province: "EE"},
	{Code: "Z310", Name: "EMIRATI ARABI UNITI", Province: "EE"},
	{Code: "Z311", Name: "FILIPPINE", Province: "EE"},
	{Code: "Z312", Name: "GIAPPONE", Province: "EE"},
	{Code: "Z313", Name: "GIORDANIA", Province: "EE"},
	{Code: "Z314", Name: "INDIA", Province: "EE"},
	{Code: "Z315", Name: "INDONESIA", Province: "EE"},
	{Code: "Z316", Name: "IRAN", Province: "EE"},
	{Code: "Z317", Name: "IRAQ", Province: "EE"},
	{Code: "Z318", Name: "ISRAELE", Province: "EE"},
	{Code: "Z319", Name: "KUWAIT", Province: "EE"},
	{Code: "Z320", Name: "LAOS", Province: "EE"},
	{Code: "Z321", Name: "LIBANO", Province: "EE"},
	{Code: "Z322", Name: "MALESIA", Province: "EE"},
	{Code: "Z323", Name: "MALDIVE", Province: "EE"},
	{Code: "Z324", Name: "MONGOLIA", Province: "EE"},
	{Code: "Z325", Name: "NEPAL", Province: "EE"},
	{Code: "Z326", Name: "OMAN", Province: "EE"},
	{Code: "Z327", Name: "PAKISTAN", Province: "EE"},
	{Code: "Z329", Name: "QATAR", Province: "EE"},
	{Code: "Z330", Name: "SINGAPORE", Province: "EE"},
	{Code: "Z331", Name: "SIRIA", Province: "EE"},
	{Code: "Z332", Name: "SRI LANKA", Province: "EE"},
	{Code: "Z333", Name: "THAILANDIA", Province: "EE"},
	{Code: "Z335", Name: "TURCHIA", Province: "EE"},
	{Code: "Z337", Name: "VIETNAM", Province: "EE"},
	{Code: "Z338", Name: "YEMEN", Province: "EE"},
	{Code: "Z340", Name: "KAZAKISTAN", Province: "EE"},
	{Code: "Z341", Name: "UZBEKISTAN", Province: "EE"},
	{Code: "Z348", Name: "ARMENIA", Province: "EE"},
	{Code: "Z349", Name: "AZERBAIGIAN", Province: "EE"},
	{Code: "Z350", Name: "GEORGIA", Province: "EE"},
	{Code: "Z351", Name: "KIRGHIZISTAN", Province: "EE"},
	{Code: "Z352", Name: "TAGIKISTAN", Province: "EE"},
	{Code: "Z353", Name: "TURKMENISTAN", Province: "EE"},
	{Code: "Z354", Name: "TAIWAN", Province: "EE"},
	{Code: "Z400", Name: "STATI UNITI D'AMERICA", Province: "EE"},
	{Code: "Z401", Name: "CANADA", Province: "EE"},
	{Code: "Z402", Name: "MESSICO", Province: "EE"},
	{Code: "Z403", Name: "GUATEMALA", Province: "EE"},
	{Code: "Z404", Name: "COSTA RICA", Province: "EE"},
	{Code: "Z405", Name: "CUBA", Province: "EE"},
	{Code: "Z407", Name: "REPUBBLICA DOMINICANA", Province: "EE"},
	{Code: "Z409", Name: "EL SALVADOR", Province: "EE"},
	{Code: "Z411", Name: "HAITI", Province: "EE"},
	{Code: "Z413", Name: "HONDURAS", Province: "EE"},
	{Code: "Z414", Name: "GIAMAICA", Province: "EE"},
	{Code: "Z415", Name: "NICARAGUA", Province: "EE"},
	{Code: "Z416", Name: "PANAMA", Province: "EE"},
	{Code: "Z500", Name: "ARGENTINA", Province: "EE"},
	{Code: "Z501", Name: "BOLIVIA", Province: "EE"},
	{Code: "Z502", Name: "BRASILE", Province: "EE"},
	{Code: "Z503", Name: "CILE", Province: "EE"},
	{Code: "Z504", Name: "COLOMBIA", Province: "EE"},
	{Code: "Z505", Name: "ECUADOR", Province: "EE"},
	{Code: "Z507", Name: "PARAGUAY", Province: "EE"},
	{Code: "Z508", Name: "PERU'", Province: "EE"},
	{Code: "Z509", Name: "SURINAME", Province: "EE"},
	{Code: "Z510", Name: "URUGUAY", Province: "EE"},
	{Code: "Z511", Name: "VENEZUELA", Province: "EE"},
	{Code: "Z600", Name: "AUSTRALIA", Province: "EE"},
	{Code: "Z609", Name: "NUOVA ZELANDA", Province: "EE"},
	{Code: "Z700", Name: "CITTA' DEL VATICANO", Province: "EE"},
}
