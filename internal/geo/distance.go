package geo

import "math"

// Средний радиус Земли в метрах (сферическая модель IUGG).
const earthRadiusM = 6371008.8

const metersPerMile = 1609.34

// Point — точка в градусах широты/долготы.
type Point struct {
	Lat float64
	Lng float64
}

// Distance возвращает расстояние по большому кругу между двумя точками
// в метрах (формула хаверсинуса, сферическая Земля). Для совпадающих
// точек возвращает ровно 0; аргумент asin зажимается в [0, 1], поэтому
// формула устойчива и для почти антиподальных точек.
func Distance(a, b Point) float64 {
	if a.Lat == b.Lat && a.Lng == b.Lng {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	if h > 1 {
		h = 1
	}
	if h < 0 {
		h = 0
	}

	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

// MetersToMiles переводит метры в мили с округлением до одного
// десятичного знака — формат, в котором расстояние уходит клиенту.
func MetersToMiles(m float64) float64 {
	return math.Round(m/metersPerMile*10) / 10
}
