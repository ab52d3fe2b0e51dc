package geo

// BoundingBox — минимальный прямоугольник, содержащий набор точек,
// в порядке [minLng, minLat, maxLng, maxLat] (как в GeoJSON bbox).
type BoundingBox [4]float64

// ComputeBBox возвращает ограничивающий прямоугольник для набора точек.
// Для пустого набора возвращает nil.
func ComputeBBox(points []Point) *BoundingBox {
	if len(points) == 0 {
		return nil
	}

	bbox := BoundingBox{points[0].Lng, points[0].Lat, points[0].Lng, points[0].Lat}
	for _, p := range points[1:] {
		if p.Lng < bbox[0] {
			bbox[0] = p.Lng
		}
		if p.Lat < bbox[1] {
			bbox[1] = p.Lat
		}
		if p.Lng > bbox[2] {
			bbox[2] = p.Lng
		}
		if p.Lat > bbox[3] {
			bbox[3] = p.Lat
		}
	}

	return &bbox
}

// ===== GeoJSON =====

// PointGeometry — геометрия точки. Координаты в порядке [lng, lat].
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature — объект GeoJSON Feature с точечной геометрией.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   PointGeometry  `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection — коллекция объектов для отображения на карте.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection создаёт пустую коллекцию (features — пустой
// срез, а не nil, чтобы в JSON всегда был массив).
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: []Feature{},
	}
}

// AddPoint добавляет точечный объект с произвольными свойствами.
func (fc *FeatureCollection) AddPoint(p Point, props map[string]any) {
	fc.Features = append(fc.Features, Feature{
		Type: "Feature",
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{p.Lng, p.Lat},
		},
		Properties: props,
	})
}
