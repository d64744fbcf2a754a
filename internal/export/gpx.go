package export

import (
	"encoding/xml"
	"time"
)

type gpxFile struct {
	XMLName  xml.Name     `xml:"gpx"`
	Xmlns    string       `xml:"xmlns,attr"`
	Version  string       `xml:"version,attr"`
	Creator  string       `xml:"creator,attr"`
	Metadata *gpxMetadata `xml:"metadata,omitempty"`
	Trk      gpxTrk       `xml:"trk"`
}

type gpxMetadata struct {
	Name string `xml:"name,omitempty"`
	Time string `xml:"time,omitempty"`
}

type gpxTrk struct {
	Name   string    `xml:"name,omitempty"`
	Desc   string    `xml:"desc,omitempty"`
	Trkseg gpxTrkseg `xml:"trkseg"`
}

type gpxTrkseg struct {
	Points []gpxTrkpt `xml:"trkpt"`
}

type gpxTrkpt struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Ele  *float64 `xml:"ele,omitempty"`
	Time string   `xml:"time,omitempty"`
}

func buildGPX(req Request, now time.Time) ([]byte, error) {
	points := make([]gpxTrkpt, len(req.Coordinates))
	for i, c := range req.Coordinates {
		pt := gpxTrkpt{Lat: c.Lat, Lon: c.Lng}
		if len(req.Elevations) > 0 {
			ele := req.Elevations[i]
			pt.Ele = &ele
		}
		if len(req.Timestamps) > 0 {
			pt.Time = req.Timestamps[i].UTC().Format(time.RFC3339)
		}
		points[i] = pt
	}

	doc := gpxFile{
		Xmlns:   "http://www.topografix.com/GPX/1/1",
		Version: "1.1",
		Creator: "routeforge",
		Metadata: &gpxMetadata{
			Name: req.displayName(),
			Time: now.UTC().Format(time.RFC3339),
		},
		Trk: gpxTrk{
			Name:   req.displayName(),
			Desc:   req.Description,
			Trkseg: gpxTrkseg{Points: points},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
