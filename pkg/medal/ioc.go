package medal

// iocNames maps 3-letter IOC codes to display names. Codes missing from the
// table render as the code itself.
var iocNames = map[string]string{
	"AIN": "Individual Neutral Athletes",
	"ALB": "Albania", "AND": "Andorra", "ARG": "Argentina",
	"ARM": "Armenia", "AUS": "Australia", "AUT": "Austria",
	"AZE": "Azerbaijan", "BEL": "Belgium", "BIH": "Bosnia and Herzegovina",
	"BLR": "Belarus", "BOL": "Bolivia", "BRA": "Brazil",
	"BUL": "Bulgaria", "CAN": "Canada", "CHI": "Chile",
	"CHN": "China", "COL": "Colombia", "CRO": "Croatia",
	"CYP": "Cyprus", "CZE": "Czech Republic", "DEN": "Denmark",
	"ERI": "Eritrea", "ESP": "Spain", "EST": "Estonia",
	"FIN": "Finland", "FRA": "France", "GBR": "Great Britain",
	"GEO": "Georgia", "GER": "Germany", "GRE": "Greece",
	"HUN": "Hungary", "ICE": "Iceland", "IND": "India",
	"IRI": "Iran", "IRL": "Ireland", "ISR": "Israel",
	"ITA": "Italy", "JAM": "Jamaica", "JPN": "Japan",
	"KAZ": "Kazakhstan", "KGZ": "Kyrgyzstan", "KOR": "South Korea",
	"KOS": "Kosovo", "LAT": "Latvia", "LBN": "Lebanon",
	"LIE": "Liechtenstein", "LTU": "Lithuania", "LUX": "Luxembourg",
	"MDA": "Moldova", "MEX": "Mexico", "MGL": "Mongolia",
	"MKD": "North Macedonia", "MLT": "Malta", "MNE": "Montenegro",
	"MON": "Monaco", "NED": "Netherlands", "NEP": "Nepal",
	"NGR": "Nigeria", "NOR": "Norway", "NZL": "New Zealand",
	"PAK": "Pakistan", "PER": "Peru", "PHI": "Philippines",
	"POL": "Poland", "POR": "Portugal", "PRK": "North Korea",
	"PUR": "Puerto Rico", "ROU": "Romania", "RSA": "South Africa",
	"RUS": "Russia", "SLO": "Slovenia", "SMR": "San Marino",
	"SRB": "Serbia", "SUI": "Switzerland", "SVK": "Slovakia",
	"SWE": "Sweden", "THA": "Thailand", "TPE": "Chinese Taipei",
	"TUR": "Turkey", "UKR": "Ukraine", "USA": "United States",
	"UZB": "Uzbekistan",
}

// CountryName resolves an IOC code to its display name, falling back to the
// code itself for unknown teams.
func CountryName(code string) string {
	if name, ok := iocNames[code]; ok {
		return name
	}
	return code
}
