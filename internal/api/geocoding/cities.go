package geocoding

import "strings"

// cityEntry is one curated well-known city with its common aliases.
type cityEntry struct {
	Name    string
	Aliases []string
	Country string
	Lat     float64
	Lon     float64
}

// popularCities resolves common destinations without touching the network.
// Keys are the canonical lowercase names.
var popularCities = map[string]cityEntry{
	"bangalore":        {Name: "Bangalore", Aliases: []string{"Bengaluru", "Bangaluru", "Bangalore"}, Country: "India", Lat: 12.9716, Lon: 77.5946},
	"mumbai":           {Name: "Mumbai", Aliases: []string{"Bombay", "Mumbai"}, Country: "India", Lat: 19.0760, Lon: 72.8777},
	"delhi":            {Name: "Delhi", Aliases: []string{"New Delhi", "Delhi", "NCR"}, Country: "India", Lat: 28.6139, Lon: 77.2090},
	"paris":            {Name: "Paris", Aliases: []string{"Paris"}, Country: "France", Lat: 48.8566, Lon: 2.3522},
	"london":           {Name: "London", Aliases: []string{"London"}, Country: "United Kingdom", Lat: 51.5074, Lon: -0.1278},
	"new york":         {Name: "New York", Aliases: []string{"New York", "NYC", "New York City"}, Country: "United States", Lat: 40.7128, Lon: -74.0060},
	"tokyo":            {Name: "Tokyo", Aliases: []string{"Tokyo"}, Country: "Japan", Lat: 35.6762, Lon: 139.6503},
	"dubai":            {Name: "Dubai", Aliases: []string{"Dubai"}, Country: "United Arab Emirates", Lat: 25.2048, Lon: 55.2708},
	"singapore":        {Name: "Singapore", Aliases: []string{"Singapore"}, Country: "Singapore", Lat: 1.3521, Lon: 103.8198},
	"sydney":           {Name: "Sydney", Aliases: []string{"Sydney"}, Country: "Australia", Lat: -33.8688, Lon: 151.2093},
	"los angeles":      {Name: "Los Angeles", Aliases: []string{"Los Angeles", "LA", "LAX"}, Country: "United States", Lat: 34.0522, Lon: -118.2437},
	"rome":             {Name: "Rome", Aliases: []string{"Rome", "Roma"}, Country: "Italy", Lat: 41.9028, Lon: 12.4964},
	"barcelona":        {Name: "Barcelona", Aliases: []string{"Barcelona"}, Country: "Spain", Lat: 41.3851, Lon: 2.1734},
	"amsterdam":        {Name: "Amsterdam", Aliases: []string{"Amsterdam"}, Country: "Netherlands", Lat: 52.3676, Lon: 4.9041},
	"berlin":           {Name: "Berlin", Aliases: []string{"Berlin"}, Country: "Germany", Lat: 52.5200, Lon: 13.4050},
	"istanbul":         {Name: "Istanbul", Aliases: []string{"Istanbul", "Constantinople"}, Country: "Turkey", Lat: 41.0082, Lon: 28.9784},
	"bangkok":          {Name: "Bangkok", Aliases: []string{"Bangkok"}, Country: "Thailand", Lat: 13.7563, Lon: 100.5018},
	"hong kong":        {Name: "Hong Kong", Aliases: []string{"Hong Kong", "HK"}, Country: "Hong Kong", Lat: 22.3193, Lon: 114.1694},
	"shanghai":         {Name: "Shanghai", Aliases: []string{"Shanghai"}, Country: "China", Lat: 31.2304, Lon: 121.4737},
	"beijing":          {Name: "Beijing", Aliases: []string{"Beijing", "Peking"}, Country: "China", Lat: 39.9042, Lon: 116.4074},
	"cairo":            {Name: "Cairo", Aliases: []string{"Cairo"}, Country: "Egypt", Lat: 30.0444, Lon: 31.2357},
	"rio de janeiro":   {Name: "Rio de Janeiro", Aliases: []string{"Rio de Janeiro", "Rio"}, Country: "Brazil", Lat: -22.9068, Lon: -43.1729},
	"moscow":           {Name: "Moscow", Aliases: []string{"Moscow", "Moskva"}, Country: "Russia", Lat: 55.7558, Lon: 37.6173},
	"madrid":           {Name: "Madrid", Aliases: []string{"Madrid"}, Country: "Spain", Lat: 40.4168, Lon: -3.7038},
	"vienna":           {Name: "Vienna", Aliases: []string{"Vienna", "Wien"}, Country: "Austria", Lat: 48.2082, Lon: 16.3738},
	"prague":           {Name: "Prague", Aliases: []string{"Prague", "Praha"}, Country: "Czech Republic", Lat: 50.0755, Lon: 14.4378},
	"athens":           {Name: "Athens", Aliases: []string{"Athens"}, Country: "Greece", Lat: 37.9838, Lon: 23.7275},
	"lisbon":           {Name: "Lisbon", Aliases: []string{"Lisbon", "Lisboa"}, Country: "Portugal", Lat: 38.7223, Lon: -9.1393},
	"stockholm":        {Name: "Stockholm", Aliases: []string{"Stockholm"}, Country: "Sweden", Lat: 59.3293, Lon: 18.0686},
	"copenhagen":       {Name: "Copenhagen", Aliases: []string{"Copenhagen", "København"}, Country: "Denmark", Lat: 55.6761, Lon: 12.5683},
	"oslo":             {Name: "Oslo", Aliases: []string{"Oslo"}, Country: "Norway", Lat: 59.9139, Lon: 10.7522},
	"helsinki":         {Name: "Helsinki", Aliases: []string{"Helsinki"}, Country: "Finland", Lat: 60.1699, Lon: 24.9384},
	"warsaw":           {Name: "Warsaw", Aliases: []string{"Warsaw", "Warszawa"}, Country: "Poland", Lat: 52.2297, Lon: 21.0122},
	"budapest":         {Name: "Budapest", Aliases: []string{"Budapest"}, Country: "Hungary", Lat: 47.4979, Lon: 19.0402},
	"dublin":           {Name: "Dublin", Aliases: []string{"Dublin"}, Country: "Ireland", Lat: 53.3498, Lon: -6.2603},
	"edinburgh":        {Name: "Edinburgh", Aliases: []string{"Edinburgh"}, Country: "United Kingdom", Lat: 55.9533, Lon: -3.1883},
	"brussels":         {Name: "Brussels", Aliases: []string{"Brussels", "Bruxelles"}, Country: "Belgium", Lat: 50.8503, Lon: 4.3517},
	"zurich":           {Name: "Zurich", Aliases: []string{"Zurich", "Zürich"}, Country: "Switzerland", Lat: 47.3769, Lon: 8.5417},
	"geneva":           {Name: "Geneva", Aliases: []string{"Geneva", "Genève"}, Country: "Switzerland", Lat: 46.2044, Lon: 6.1432},
	"milan":            {Name: "Milan", Aliases: []string{"Milan", "Milano"}, Country: "Italy", Lat: 45.4642, Lon: 9.1900},
	"venice":           {Name: "Venice", Aliases: []string{"Venice", "Venezia"}, Country: "Italy", Lat: 45.4408, Lon: 12.3155},
	"florence":         {Name: "Florence", Aliases: []string{"Florence", "Firenze"}, Country: "Italy", Lat: 43.7696, Lon: 11.2558},
	"naples":           {Name: "Naples", Aliases: []string{"Naples", "Napoli"}, Country: "Italy", Lat: 40.8518, Lon: 14.2681},
	"seoul":            {Name: "Seoul", Aliases: []string{"Seoul"}, Country: "South Korea", Lat: 37.5665, Lon: 126.9780},
	"taipei":           {Name: "Taipei", Aliases: []string{"Taipei"}, Country: "Taiwan", Lat: 25.0330, Lon: 121.5654},
	"kuala lumpur":     {Name: "Kuala Lumpur", Aliases: []string{"Kuala Lumpur", "KL"}, Country: "Malaysia", Lat: 3.1390, Lon: 101.6869},
	"jakarta":          {Name: "Jakarta", Aliases: []string{"Jakarta"}, Country: "Indonesia", Lat: -6.2088, Lon: 106.8456},
	"manila":           {Name: "Manila", Aliases: []string{"Manila"}, Country: "Philippines", Lat: 14.5995, Lon: 120.9842},
	"ho chi minh city": {Name: "Ho Chi Minh City", Aliases: []string{"Ho Chi Minh City", "Saigon", "HCMC"}, Country: "Vietnam", Lat: 10.8231, Lon: 106.6297},
	"mexico city":      {Name: "Mexico City", Aliases: []string{"Mexico City", "Ciudad de México"}, Country: "Mexico", Lat: 19.4326, Lon: -99.1332},
	"buenos aires":     {Name: "Buenos Aires", Aliases: []string{"Buenos Aires"}, Country: "Argentina", Lat: -34.6037, Lon: -58.3816},
	"lima":             {Name: "Lima", Aliases: []string{"Lima"}, Country: "Peru", Lat: -12.0464, Lon: -77.0428},
	"santiago":         {Name: "Santiago", Aliases: []string{"Santiago"}, Country: "Chile", Lat: -33.4489, Lon: -70.6693},
	"bogota":           {Name: "Bogotá", Aliases: []string{"Bogotá", "Bogota"}, Country: "Colombia", Lat: 4.7110, Lon: -74.0721},
	"casablanca":       {Name: "Casablanca", Aliases: []string{"Casablanca"}, Country: "Morocco", Lat: 33.5731, Lon: -7.5898},
	"johannesburg":     {Name: "Johannesburg", Aliases: []string{"Johannesburg", "Joburg"}, Country: "South Africa", Lat: -26.2041, Lon: 28.0473},
	"cape town":        {Name: "Cape Town", Aliases: []string{"Cape Town"}, Country: "South Africa", Lat: -33.9249, Lon: 18.4241},
	"nairobi":          {Name: "Nairobi", Aliases: []string{"Nairobi"}, Country: "Kenya", Lat: -1.2921, Lon: 36.8219},
	"lagos":            {Name: "Lagos", Aliases: []string{"Lagos"}, Country: "Nigeria", Lat: 6.5244, Lon: 3.3792},
	"tel aviv":         {Name: "Tel Aviv", Aliases: []string{"Tel Aviv", "Tel Aviv-Yafo"}, Country: "Israel", Lat: 32.0853, Lon: 34.7818},
	"jerusalem":        {Name: "Jerusalem", Aliases: []string{"Jerusalem"}, Country: "Israel", Lat: 31.7683, Lon: 35.2137},
	"doha":             {Name: "Doha", Aliases: []string{"Doha"}, Country: "Qatar", Lat: 25.2854, Lon: 51.5310},
	"riyadh":           {Name: "Riyadh", Aliases: []string{"Riyadh"}, Country: "Saudi Arabia", Lat: 24.7136, Lon: 46.6753},
	"jeddah":           {Name: "Jeddah", Aliases: []string{"Jeddah"}, Country: "Saudi Arabia", Lat: 21.4858, Lon: 39.1925},
	"abu dhabi":        {Name: "Abu Dhabi", Aliases: []string{"Abu Dhabi"}, Country: "United Arab Emirates", Lat: 24.4539, Lon: 54.3773},
	"kolkata":          {Name: "Kolkata", Aliases: []string{"Kolkata", "Calcutta"}, Country: "India", Lat: 22.5726, Lon: 88.3639},
	"chennai":          {Name: "Chennai", Aliases: []string{"Chennai", "Madras"}, Country: "India", Lat: 13.0827, Lon: 80.2707},
	"hyderabad":        {Name: "Hyderabad", Aliases: []string{"Hyderabad"}, Country: "India", Lat: 17.3850, Lon: 78.4867},
	"pune":             {Name: "Pune", Aliases: []string{"Pune", "Poona"}, Country: "India", Lat: 18.5204, Lon: 73.8567},
	"ahmedabad":        {Name: "Ahmedabad", Aliases: []string{"Ahmedabad"}, Country: "India", Lat: 23.0225, Lon: 72.5714},
	"jaipur":           {Name: "Jaipur", Aliases: []string{"Jaipur"}, Country: "India", Lat: 26.9124, Lon: 75.7873},
	"goa":              {Name: "Goa", Aliases: []string{"Goa"}, Country: "India", Lat: 15.2993, Lon: 74.1240},
	"kochi":            {Name: "Kochi", Aliases: []string{"Kochi", "Cochin"}, Country: "India", Lat: 9.9312, Lon: 76.2673},
	"udaipur":          {Name: "Udaipur", Aliases: []string{"Udaipur"}, Country: "India", Lat: 24.5854, Lon: 73.7125},
	"varanasi":         {Name: "Varanasi", Aliases: []string{"Varanasi", "Benares", "Kashi"}, Country: "India", Lat: 25.3176, Lon: 82.9739},
	"agra":             {Name: "Agra", Aliases: []string{"Agra"}, Country: "India", Lat: 27.1767, Lon: 78.0081},
	"chicago":          {Name: "Chicago", Aliases: []string{"Chicago", "Chi-Town"}, Country: "United States", Lat: 41.8781, Lon: -87.6298},
	"san francisco":    {Name: "San Francisco", Aliases: []string{"San Francisco", "SF", "Frisco"}, Country: "United States", Lat: 37.7749, Lon: -122.4194},
	"boston":           {Name: "Boston", Aliases: []string{"Boston"}, Country: "United States", Lat: 42.3601, Lon: -71.0589},
	"washington":       {Name: "Washington DC", Aliases: []string{"Washington", "Washington DC", "DC"}, Country: "United States", Lat: 38.9072, Lon: -77.0369},
	"miami":            {Name: "Miami", Aliases: []string{"Miami"}, Country: "United States", Lat: 25.7617, Lon: -80.1918},
	"las vegas":        {Name: "Las Vegas", Aliases: []string{"Las Vegas", "Vegas"}, Country: "United States", Lat: 36.1699, Lon: -115.1398},
	"seattle":          {Name: "Seattle", Aliases: []string{"Seattle"}, Country: "United States", Lat: 47.6062, Lon: -122.3321},
	"toronto":          {Name: "Toronto", Aliases: []string{"Toronto"}, Country: "Canada", Lat: 43.6532, Lon: -79.3832},
	"vancouver":        {Name: "Vancouver", Aliases: []string{"Vancouver"}, Country: "Canada", Lat: 49.2827, Lon: -123.1207},
	"montreal":         {Name: "Montreal", Aliases: []string{"Montreal", "Montréal"}, Country: "Canada", Lat: 45.5017, Lon: -73.5673},
}

// findCityByName matches the input against the curated table: direct key
// first, then aliases, then substring containment either way.
func findCityByName(input string) *cityEntry {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return nil
	}

	if city, ok := popularCities[normalized]; ok {
		return &city
	}

	for _, city := range popularCities {
		for _, alias := range city.Aliases {
			if strings.ToLower(alias) == normalized {
				c := city
				return &c
			}
		}
	}

	for key, city := range popularCities {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			c := city
			return &c
		}
		for _, alias := range city.Aliases {
			lowerAlias := strings.ToLower(alias)
			if strings.Contains(normalized, lowerAlias) || strings.Contains(lowerAlias, normalized) {
				c := city
				return &c
			}
		}
	}

	return nil
}
