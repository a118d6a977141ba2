package weather

import "github.com/MKhiriev/go-climate-intel/models"

// Layers returns the map overlays the client can offer.
func Layers() []models.MapLayer {
	return []models.MapLayer{
		{ID: "temperature", Name: "Temperature", Unit: "°C", Gradient: []string{"#0000FF", "#00FF00", "#FFFF00", "#FF0000"}},
		{ID: "rainfall", Name: "Rainfall", Unit: "mm", Gradient: []string{"#FFFFFF", "#87CEEB", "#1E90FF", "#00008B"}},
		{ID: "wind", Name: "Wind Speed", Unit: "km/h", Gradient: []string{"#90EE90", "#FFFF00", "#FFA500", "#FF0000"}},
		{ID: "humidity", Name: "Humidity", Unit: "%", Gradient: []string{"#F5DEB3", "#87CEEB", "#4169E1", "#00008B"}},
		{ID: "risk", Name: "Risk Level", Unit: "%", Gradient: []string{"#00FF00", "#FFFF00", "#FFA500", "#FF0000"}},
	}
}
