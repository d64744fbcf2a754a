package export

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type kmlFile struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name      string       `xml:"name,omitempty"`
	Placemark kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string        `xml:"name,omitempty"`
	Description string        `xml:"description,omitempty"`
	LineString  kmlLineString `xml:"LineString"`
}

type kmlLineString struct {
	Tessellate  int    `xml:"tessellate"`
	Coordinates string `xml:"coordinates"`
}

func buildKML(req Request) ([]byte, error) {
	triples := make([]string, len(req.Coordinates))
	for i, c := range req.Coordinates {
		ele := 0.0
		if len(req.Elevations) > 0 {
			ele = req.Elevations[i]
		}
		triples[i] = fmt.Sprintf("%f,%f,%f", c.Lng, c.Lat, ele)
	}

	doc := kmlFile{
		Xmlns: "http://www.opengis.net/kml/2.2",
		Document: kmlDocument{
			Name: req.displayName(),
			Placemark: kmlPlacemark{
				Name:        req.displayName(),
				Description: req.Description,
				LineString: kmlLineString{
					Tessellate:  1,
					Coordinates: strings.Join(triples, "\n"),
				},
			},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
