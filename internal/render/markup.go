// Package render turns a derived display into the 800x480 TRMNL panel markup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
)

// Columns is the number of grid columns shared by the hourly header and the
// precipitation bars, one per chart hour.
const Columns = 19

//go:embed templates/panel.html.tmpl
var templateFS embed.FS

var panel = template.Must(template.ParseFS(templateFS, "templates/panel.html.tmpl"))

type hourlyCell struct {
	Column        int
	Time          string
	Precipitation int
}

type dailyCell struct {
	Day  string
	High int
	Low  int
	Icon template.HTML
}

type panelView struct {
	Columns       int
	Current       domain.CurrentSnapshot
	CurrentIcon   template.HTML
	Hourly        []hourlyCell
	Bars          []int
	Wind          domain.WindGeometry
	WindPolyline  string
	ChartWidth    int
	WindHeight    int
	LabelBaseline int
	Daily         []dailyCell
}

// Markup renders d as a self-contained HTML fragment with inline CSS and SVG.
func Markup(d domain.Display) (string, error) {
	var buf bytes.Buffer
	if err := panel.Execute(&buf, newPanelView(d)); err != nil {
		return "", fmt.Errorf("render panel: %w", err)
	}
	return buf.String(), nil
}

func newPanelView(d domain.Display) panelView {
	v := panelView{
		Columns:       Columns,
		Current:       d.Current,
		CurrentIcon:   icon(d.Current.Icon),
		Bars:          domain.PrecipitationBars(d.ChartHours),
		Wind:          domain.WindChartGeometry(domain.WindSpeeds(d.ChartHours)),
		ChartWidth:    domain.ChartWidth,
		WindHeight:    domain.WindGraphHeight,
		LabelBaseline: domain.WindLabelBaseline,
	}

	// Hourly labels sit over every third chart column: 1, 4, ..., 19.
	for i, h := range d.Hourly {
		v.Hourly = append(v.Hourly, hourlyCell{
			Column:        1 + 3*i,
			Time:          h.Time,
			Precipitation: h.Precipitation,
		})
	}

	points := make([]string, len(v.Wind.Points))
	for i, p := range v.Wind.Points {
		points[i] = strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
	}
	v.WindPolyline = strings.Join(points, " ")

	for _, day := range d.Daily {
		v.Daily = append(v.Daily, dailyCell{
			Day:  day.Day,
			High: day.High,
			Low:  day.Low,
			Icon: icon(day.Icon),
		})
	}
	return v
}
