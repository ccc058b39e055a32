package hub

// regionByCountry maps ISO 3166-1 alpha-2 country codes to the fixed set of
// region names ratings are partitioned by.
var regionByCountry = map[string]string{
	"AF": "Asia",
	"AX": "Europe",
	"AL": "Europe",
	"DZ": "Africa",
	"AS": "Oceania",
	"AD": "Europe",
	"AO": "Africa",
	"AI": "South America",
	"AG": "South America",
	"AR": "South America",
	"AM": "Asia",
	"AW": "South America",
	"AU": "Oceania",
	"AT": "Europe",
	"AZ": "Asia",
	"BS": "South America",
	"BH": "Asia",
	"BD": "Asia",
	"BB": "South America",
	"BY": "Europe",
	"BE": "Europe",
	"BZ": "South America",
	"BJ": "Africa",
	"BM": "North America",
	"BT": "Asia",
	"BO": "South America",
	"BQ": "South America",
	"BA": "Europe",
	"BW": "Africa",
	"BV": "South America",
	"BR": "South America",
	"IO": "Africa",
	"BN": "Asia",
	"BG": "Europe",
	"BF": "Africa",
	"BI": "Africa",
	"CV": "Africa",
	"KH": "Asia",
	"CM": "Africa",
	"CA": "North America",
	"KY": "South America",
	"CF": "Africa",
	"TD": "Africa",
	"CL": "South America",
	"CN": "Asia",
	"CX": "Oceania",
	"CC": "Oceania",
	"CO": "South America",
	"KM": "Africa",
	"CG": "Africa",
	"CD": "Africa",
	"CK": "Oceania",
	"CR": "South America",
	"CI": "Africa",
	"HR": "Europe",
	"CU": "South America",
	"CW": "South America",
	"CY": "Asia",
	"CZ": "Europe",
	"DK": "Europe",
	"DJ": "Africa",
	"DM": "South America",
	"DO": "South America",
	"EC": "South America",
	"EG": "Africa",
	"SV": "South America",
	"GQ": "Africa",
	"ER": "Africa",
	"EE": "Europe",
	"SZ": "Africa",
	"ET": "Africa",
	"FK": "South America",
	"FO": "Europe",
	"FJ": "Oceania",
	"FI": "Europe",
	"FR": "Europe",
	"GF": "South America",
	"PF": "Oceania",
	"TF": "Africa",
	"GA": "Africa",
	"GM": "Africa",
	"GE": "Asia",
	"DE": "Europe",
	"GH": "Africa",
	"GI": "Europe",
	"GR": "Europe",
	"GL": "North America",
	"GD": "South America",
	"GP": "South America",
	"GU": "Oceania",
	"GT": "South America",
	"GG": "Europe",
	"GN": "Africa",
	"GW": "Africa",
	"GY": "South America",
	"HT": "South America",
	"HM": "Oceania",
	"VA": "Europe",
	"HN": "South America",
	"HK": "Asia",
	"HU": "Europe",
	"IS": "Europe",
	"IN": "Asia",
	"ID": "Asia",
	"IR": "Asia",
	"IQ": "Asia",
	"IE": "Europe",
	"IM": "Europe",
	"IL": "Asia",
	"IT": "Europe",
	"JM": "South America",
	"JP": "Asia",
	"JE": "Europe",
	"JO": "Asia",
	"KZ": "Asia",
	"KE": "Africa",
	"KI": "Oceania",
	"KP": "Asia",
	"KR": "Asia",
	"KW": "Asia",
	"KG": "Asia",
	"LA": "Asia",
	"LV": "Europe",
	"LB": "Asia",
	"LS": "Africa",
	"LR": "Africa",
	"LY": "Africa",
	"LI": "Europe",
	"LT": "Europe",
	"LU": "Europe",
	"MO": "Asia",
	"MG": "Africa",
	"MW": "Africa",
	"MY": "Asia",
	"MV": "Asia",
	"ML": "Africa",
	"MT": "Europe",
	"MH": "Oceania",
	"MQ": "South America",
	"MR": "Africa",
	"MU": "Africa",
	"YT": "Africa",
	"MX": "South America",
	"FM": "Oceania",
	"MD": "Europe",
	"MC": "Europe",
	"MN": "Asia",
	"ME": "Europe",
	"MS": "South America",
	"MA": "Africa",
	"MZ": "Africa",
	"MM": "Asia",
	"NR": "Oceania",
	"NP": "Asia",
	"NL": "Europe",
	"NC": "Oceania",
	"NZ": "Oceania",
	"NI": "South America",
	"NE": "Africa",
	"NG": "Africa",
	"NU": "Oceania",
	"NF": "Oceania",
	"MK": "Europe",
	"MP": "Oceania",
	"NO": "Europe",
	"OM": "Asia",
	"PK": "Asia",
	"PW": "Oceania",
	"PS": "Asia",
	"PA": "South America",
	"PG": "Oceania",
	"PY": "South America",
	"PE": "South America",
	"PH": "Asia",
	"PN": "Oceania",
	"PL": "Europe",
	"PT": "Europe",
	"PR": "South America",
	"QA": "Asia",
	"RE": "Africa",
	"RO": "Europe",
	"RU": "Europe",
	"RW": "Africa",
	"BL": "South America",
	"SH": "Africa",
	"KN": "South America",
	"LC": "South America",
	"MF": "South America",
	"PM": "North America",
	"VC": "South America",
	"WS": "Oceania",
	"SM": "Europe",
	"ST": "Africa",
	"SA": "Asia",
	"SN": "Africa",
	"RS": "Europe",
	"SC": "Africa",
	"SL": "Africa",
	"SG": "Asia",
	"SX": "South America",
	"SK": "Europe",
	"SI": "Europe",
	"SB": "Oceania",
	"SO": "Africa",
	"ZA": "Africa",
	"GS": "South America",
	"SS": "Africa",
	"ES": "Europe",
	"LK": "Asia",
	"SD": "Africa",
	"SR": "South America",
	"SJ": "Europe",
	"SE": "Europe",
	"CH": "Europe",
	"SY": "Asia",
	"TJ": "Asia",
	"TZ": "Africa",
	"TH": "Asia",
	"TL": "Asia",
	"TG": "Africa",
	"TK": "Oceania",
	"TO": "Oceania",
	"TT": "South America",
	"TN": "Africa",
	"TR": "Asia",
	"TM": "Asia",
	"TC": "South America",
	"TV": "Oceania",
	"UG": "Africa",
	"UA": "Europe",
	"AE": "Asia",
	"GB": "Europe",
	"US": "North America",
	"UM": "Oceania",
	"UY": "South America",
	"UZ": "Asia",
	"VU": "Oceania",
	"VE": "South America",
	"VN": "Asia",
	"VG": "South America",
	"VI": "South America",
	"WF": "Oceania",
	"EH": "Africa",
	"YE": "Asia",
	"ZM": "Africa",
	"ZW": "Africa",
}

// RegionForCountry maps a two-letter country code to its region. The second
// return value is false for unknown codes.
func RegionForCountry(code string) (string, bool) {
	region, ok := regionByCountry[code]
	return region, ok
}
