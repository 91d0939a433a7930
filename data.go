package country

// Country is one record of the static ISO 3166-1 dataset.
// Names[0] is the canonical display name; the rest are accepted
// alternates (official long forms, historical names, abbreviations).
type Country struct {
	Code  string
	Names []string
}

// countryTable is the compiled-in dataset. Table order is load-bearing:
// the resolver's first-literal-match rule disambiguates names shared
// between countries (e.g. "Congo") by position, so entries must not be
// reordered and the list must stay sorted by code.
var countryTable = []Country{
	{"AD", []string{"Andorra"}},
	{"AE", []string{"United Arab Emirates", "UAE"}},
	{"AF", []string{"Afghanistan"}},
	{"AG", []string{"Antigua & Barbuda", "Antigua", "Barbuda"}},
	{"AI", []string{"Anguilla"}},
	{"AL", []string{"Albania"}},
	{"AM", []string{"Armenia"}},
	{"AN", []string{"Netherlands Antilles"}},
	{"AO", []string{"Angola"}},
	{"AQ", []string{"Antarctica"}},
	{"AR", []string{"Argentina"}},
	{"AS", []string{"American Samoa"}},
	{"AT", []string{"Austria"}},
	{"AU", []string{"Australia"}},
	{"AW", []string{"Aruba"}},
	{"AX", []string{"Åland Islands"}},
	{"AZ", []string{"Azerbaijan"}},
	{"BA", []string{"Bosnia & Herzegovina", "Bosnia", "Herzegovina"}},
	{"BB", []string{"Barbados"}},
	{"BD", []string{"Bangladesh"}},
	{"BE", []string{"Belgium"}},
	{"BF", []string{"Burkina Faso"}},
	{"BG", []string{"Bulgaria"}},
	{"BH", []string{"Bahrain"}},
	{"BI", []string{"Burundi"}},
	{"BJ", []string{"Benin"}},
	{"BL", []string{"Saint Barthélemy"}},
	{"BM", []string{"Bermuda"}},
	{"BN", []string{"Brunei", "Brunei Darussalam"}},
	{"BO", []string{"Bolivia", "Bolivia, Plurinational State of"}},
	{"BQ", []string{"Caribbean Netherlands", "Bonaire, Sint Eustatius and Saba"}},
	{"BR", []string{"Brazil"}},
	{"BS", []string{"Bahamas"}},
	{"BT", []string{"Bhutan"}},
	{"BV", []string{"Bouvet Island"}},
	{"BW", []string{"Botswana"}},
	{"BY", []string{"Belarus"}},
	{"BZ", []string{"Belize"}},
	{"CA", []string{"Canada"}},
	{"CC", []string{"Cocos (Keeling) Islands", "Cocos Islands"}},
	{"CD", []string{"Congo-Kinshasa", "Congo", "Congo, The Democratic Republic of the", "Democratic Republic of the Congo", "DR Congo", "DRC", "Zaire"}},
	{"CF", []string{"Central African Republic"}},
	{"CG", []string{"Congo-Brazzaville", "Congo, Republic of the", "Republic of the Congo", "Congo Republic"}},
	{"CH", []string{"Switzerland"}},
	{"CI", []string{"Côte d'Ivoire", "Ivory Coast"}},
	{"CK", []string{"Cook Islands"}},
	{"CL", []string{"Chile"}},
	{"CM", []string{"Cameroon"}},
	{"CN", []string{"China", "People's Republic of China"}},
	{"CO", []string{"Colombia"}},
	{"CR", []string{"Costa Rica"}},
	{"CU", []string{"Cuba"}},
	{"CV", []string{"Cape Verde", "Cabo Verde"}},
	{"CW", []string{"Curaçao"}},
	{"CX", []string{"Christmas Island"}},
	{"CY", []string{"Cyprus"}},
	{"CZ", []string{"Czech Republic", "Czechia"}},
	{"DE", []string{"Germany"}},
	{"DJ", []string{"Djibouti"}},
	{"DK", []string{"Denmark"}},
	{"DM", []string{"Dominica"}},
	{"DO", []string{"Dominican Republic"}},
	{"DZ", []string{"Algeria"}},
	{"EC", []string{"Ecuador"}},
	{"EE", []string{"Estonia"}},
	{"EG", []string{"Egypt"}},
	{"EH", []string{"Western Sahara"}},
	{"ER", []string{"Eritrea"}},
	{"ES", []string{"Spain"}},
	{"ET", []string{"Ethiopia"}},
	{"FI", []string{"Finland"}},
	{"FJ", []string{"Fiji"}},
	{"FK", []string{"Falkland Islands", "Falkland Islands (Malvinas)"}},
	{"FM", []string{"Micronesia", "Federated States of Micronesia"}},
	{"FO", []string{"Faroe Islands"}},
	{"FR", []string{"France"}},
	{"GA", []string{"Gabon"}},
	{"GB", []string{"United Kingdom", "UK", "Great Britain", "Britain"}},
	{"GD", []string{"Grenada"}},
	{"GE", []string{"Georgia"}},
	{"GF", []string{"French Guiana"}},
	{"GG", []string{"Guernsey"}},
	{"GH", []string{"Ghana"}},
	{"GI", []string{"Gibraltar"}},
	{"GL", []string{"Greenland"}},
	{"GM", []string{"Gambia"}},
	{"GN", []string{"Guinea"}},
	{"GP", []string{"Guadeloupe"}},
	{"GQ", []string{"Equatorial Guinea"}},
	{"GR", []string{"Greece"}},
	{"GS", []string{"South Georgia & the South Sandwich Islands"}},
	{"GT", []string{"Guatemala"}},
	{"GU", []string{"Guam"}},
	{"GW", []string{"Guinea-Bissau"}},
	{"GY", []string{"Guyana"}},
	{"HK", []string{"Hong Kong"}},
	{"HM", []string{"Heard Island & McDonald Islands"}},
	{"HN", []string{"Honduras"}},
	{"HR", []string{"Croatia"}},
	{"HT", []string{"Haiti"}},
	{"HU", []string{"Hungary"}},
	{"ID", []string{"Indonesia"}},
	{"IE", []string{"Ireland"}},
	{"IL", []string{"Israel"}},
	{"IM", []string{"Isle of Man"}},
	{"IN", []string{"India"}},
	{"IO", []string{"British Indian Ocean Territory"}},
	{"IQ", []string{"Iraq"}},
	{"IR", []string{"Iran", "Iran, Islamic Republic of", "Islamic Republic of Iran"}},
	{"IS", []string{"Iceland"}},
	{"IT", []string{"Italy"}},
	{"JE", []string{"Jersey"}},
	{"JM", []string{"Jamaica"}},
	{"JO", []string{"Jordan"}},
	{"JP", []string{"Japan"}},
	{"KE", []string{"Kenya"}},
	{"KG", []string{"Kyrgyzstan"}},
	{"KH", []string{"Cambodia"}},
	{"KI", []string{"Kiribati"}},
	{"KM", []string{"Comoros"}},
	{"KN", []string{"Saint Kitts & Nevis"}},
	{"KP", []string{"North Korea", "Korea, Democratic People's Republic of", "DPRK"}},
	{"KR", []string{"South Korea", "Korea, Republic of"}},
	{"KW", []string{"Kuwait"}},
	{"KY", []string{"Cayman Islands"}},
	{"KZ", []string{"Kazakhstan"}},
	{"LA", []string{"Laos", "Lao People's Democratic Republic"}},
	{"LB", []string{"Lebanon"}},
	{"LC", []string{"Saint Lucia"}},
	{"LI", []string{"Liechtenstein"}},
	{"LK", []string{"Sri Lanka"}},
	{"LR", []string{"Liberia"}},
	{"LS", []string{"Lesotho"}},
	{"LT", []string{"Lithuania"}},
	{"LU", []string{"Luxembourg"}},
	{"LV", []string{"Latvia"}},
	{"LY", []string{"Libya", "Libyan Arab Jamahiriya"}},
	{"MA", []string{"Morocco"}},
	{"MC", []string{"Monaco"}},
	{"MD", []string{"Moldova", "Moldova, Republic of"}},
	{"ME", []string{"Montenegro"}},
	{"MF", []string{"Saint Martin", "Saint Martin (French part)"}},
	{"MG", []string{"Madagascar"}},
	{"MH", []string{"Marshall Islands"}},
	{"MK", []string{"North Macedonia", "Macedonia, The Former Yugoslav Republic of", "Republic of North Macedonia", "FYROM"}},
	{"ML", []string{"Mali"}},
	{"MM", []string{"Myanmar", "Burma"}},
	{"MN", []string{"Mongolia"}},
	{"MO", []string{"Macau", "Macao"}},
	{"MP", []string{"Northern Mariana Islands"}},
	{"MQ", []string{"Martinique"}},
	{"MR", []string{"Mauritania"}},
	{"MS", []string{"Montserrat"}},
	{"MT", []string{"Malta"}},
	{"MU", []string{"Mauritius"}},
	{"MV", []string{"Maldives"}},
	{"MW", []string{"Malawi"}},
	{"MX", []string{"Mexico"}},
	{"MY", []string{"Malaysia"}},
	{"MZ", []string{"Mozambique"}},
	{"NA", []string{"Namibia"}},
	{"NC", []string{"New Caledonia"}},
	{"NE", []string{"Niger"}},
	{"NF", []string{"Norfolk Island"}},
	{"NG", []string{"Nigeria"}},
	{"NI", []string{"Nicaragua"}},
	{"NL", []string{"Netherlands", "The Netherlands", "Holland"}},
	{"NO", []string{"Norway"}},
	{"NP", []string{"Nepal"}},
	{"NR", []string{"Nauru"}},
	{"NU", []string{"Niue"}},
	{"NZ", []string{"New Zealand"}},
	{"OM", []string{"Oman"}},
	{"PA", []string{"Panama"}},
	{"PE", []string{"Peru"}},
	{"PF", []string{"French Polynesia"}},
	{"PG", []string{"Papua New Guinea"}},
	{"PH", []string{"Philippines"}},
	{"PK", []string{"Pakistan"}},
	{"PL", []string{"Poland"}},
	{"PM", []string{"Saint Pierre & Miquelon"}},
	{"PN", []string{"Pitcairn Islands", "Pitcairn"}},
	{"PR", []string{"Puerto Rico"}},
	{"PS", []string{"Palestine", "State of Palestine", "Palestinian Territory, Occupied"}},
	{"PT", []string{"Portugal"}},
	{"PW", []string{"Palau"}},
	{"PY", []string{"Paraguay"}},
	{"QA", []string{"Qatar"}},
	{"RE", []string{"Réunion"}},
	{"RO", []string{"Romania"}},
	{"RS", []string{"Serbia"}},
	{"RU", []string{"Russia", "Russian Federation"}},
	{"RW", []string{"Rwanda"}},
	{"SA", []string{"Saudi Arabia"}},
	{"SB", []string{"Solomon Islands"}},
	{"SC", []string{"Seychelles"}},
	{"SD", []string{"Sudan"}},
	{"SE", []string{"Sweden"}},
	{"SG", []string{"Singapore"}},
	{"SH", []string{"Saint Helena"}},
	{"SI", []string{"Slovenia"}},
	{"SJ", []string{"Svalbard & Jan Mayen"}},
	{"SK", []string{"Slovakia"}},
	{"SL", []string{"Sierra Leone"}},
	{"SM", []string{"San Marino"}},
	{"SN", []string{"Senegal"}},
	{"SO", []string{"Somalia"}},
	{"SR", []string{"Suriname"}},
	{"SS", []string{"South Sudan"}},
	{"ST", []string{"São Tomé & Príncipe", "Sao Tome and Principe"}},
	{"SV", []string{"El Salvador"}},
	{"SX", []string{"Sint Maarten", "Sint Maarten (Dutch part)"}},
	{"SY", []string{"Syria", "Syrian Arab Republic"}},
	{"SZ", []string{"Eswatini", "Swaziland"}},
	{"TC", []string{"Turks & Caicos Islands"}},
	{"TD", []string{"Chad"}},
	{"TF", []string{"French Southern Territories"}},
	{"TG", []string{"Togo"}},
	{"TH", []string{"Thailand"}},
	{"TJ", []string{"Tajikistan"}},
	{"TK", []string{"Tokelau"}},
	{"TL", []string{"Timor-Leste", "East Timor"}},
	{"TM", []string{"Turkmenistan"}},
	{"TN", []string{"Tunisia"}},
	{"TO", []string{"Tonga"}},
	{"TR", []string{"Turkey", "Türkiye"}},
	{"TT", []string{"Trinidad & Tobago"}},
	{"TV", []string{"Tuvalu"}},
	{"TW", []string{"Taiwan", "Taiwan, Province of China"}},
	{"TZ", []string{"Tanzania", "Tanzania, United Republic of", "United Republic of Tanzania"}},
	{"UA", []string{"Ukraine"}},
	{"UG", []string{"Uganda"}},
	{"UM", []string{"U.S. Minor Outlying Islands", "United States Minor Outlying Islands"}},
	{"US", []string{"United States", "USA", "United States of America", "America"}},
	{"UY", []string{"Uruguay"}},
	{"UZ", []string{"Uzbekistan"}},
	{"VA", []string{"Vatican City", "Holy See (Vatican City State)", "Holy See", "Vatican"}},
	{"VC", []string{"Saint Vincent & the Grenadines", "Saint Vincent and the Grenadines"}},
	{"VE", []string{"Venezuela", "Venezuela, Bolivarian Republic of"}},
	{"VG", []string{"British Virgin Islands", "Virgin Islands, British"}},
	{"VI", []string{"U.S. Virgin Islands", "Virgin Islands, U.S.", "US Virgin Islands"}},
	{"VN", []string{"Vietnam", "Viet Nam"}},
	{"VU", []string{"Vanuatu"}},
	{"WF", []string{"Wallis & Futuna"}},
	{"WS", []string{"Samoa"}},
	{"YE", []string{"Yemen"}},
	{"YT", []string{"Mayotte"}},
	{"ZA", []string{"South Africa"}},
	{"ZM", []string{"Zambia"}},
	{"ZW", []string{"Zimbabwe"}},
}
