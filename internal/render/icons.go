package render

import (
	"html/template"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
)

// icons are 48x48 stroke-only SVGs keyed by domain icon category.
var icons = map[string]template.HTML{
	domain.IconClear: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<circle cx="24" cy="24" r="10"/>
		<line x1="24" y1="2" x2="24" y2="8"/><line x1="24" y1="40" x2="24" y2="46"/>
		<line x1="2" y1="24" x2="8" y2="24"/><line x1="40" y1="24" x2="46" y2="24"/>
		<line x1="8.3" y1="8.3" x2="12.5" y2="12.5"/><line x1="35.5" y1="35.5" x2="39.7" y2="39.7"/>
		<line x1="8.3" y1="39.7" x2="12.5" y2="35.5"/><line x1="35.5" y1="12.5" x2="39.7" y2="8.3"/>
	</svg>`,
	domain.IconMostlyClear: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<circle cx="20" cy="18" r="8"/>
		<line x1="20" y1="4" x2="20" y2="8"/><line x1="8" y1="18" x2="4" y2="18"/>
		<line x1="10" y1="8" x2="12.5" y2="10.5"/><line x1="30" y1="8" x2="27.5" y2="10.5"/>
		<line x1="32" y1="18" x2="34" y2="18"/>
		<path d="M16 30 Q16 24 22 24 Q22 20 28 20 Q34 20 34 26 Q38 26 38 30 Q38 34 34 34 L18 34 Q14 34 14 30 Z"/>
	</svg>`,
	domain.IconPartlyCloudy: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<circle cx="20" cy="16" r="8"/>
		<line x1="20" y1="2" x2="20" y2="6"/><line x1="6" y1="16" x2="2" y2="16"/>
		<line x1="9" y1="6" x2="11.5" y2="8.5"/><line x1="31" y1="6" x2="28.5" y2="8.5"/>
		<line x1="34" y1="16" x2="36" y2="16"/>
		<path d="M14 32 Q14 25 21 25 Q22 20 28 20 Q35 20 35 27 Q40 27 40 32 Q40 37 35 37 L18 37 Q14 37 14 32 Z"/>
	</svg>`,
	domain.IconOvercast: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<path d="M12 34 Q12 27 19 27 Q20 22 26 22 Q33 22 33 29 Q38 29 38 34 Q38 39 33 39 L16 39 Q12 39 12 34 Z"/>
		<path d="M20 27 Q20 21 26 21 Q27 17 32 17 Q38 17 38 23 Q42 23 42 27 Q42 30 39 31" opacity="0.5"/>
	</svg>`,
	domain.IconFog: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<line x1="8" y1="18" x2="40" y2="18"/><line x1="6" y1="24" x2="42" y2="24"/>
		<line x1="8" y1="30" x2="40" y2="30"/><line x1="12" y1="36" x2="36" y2="36"/>
	</svg>`,
	domain.IconDrizzle: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<path d="M12 24 Q12 17 19 17 Q20 12 26 12 Q33 12 33 19 Q38 19 38 24 Q38 29 33 29 L16 29 Q12 29 12 24 Z"/>
		<line x1="16" y1="33" x2="15" y2="37"/><line x1="24" y1="33" x2="23" y2="37"/>
		<line x1="32" y1="33" x2="31" y2="37"/>
	</svg>`,
	domain.IconRain: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<path d="M12 22 Q12 15 19 15 Q20 10 26 10 Q33 10 33 17 Q38 17 38 22 Q38 27 33 27 L16 27 Q12 27 12 22 Z"/>
		<line x1="14" y1="31" x2="12" y2="38"/><line x1="21" y1="31" x2="19" y2="38"/>
		<line x1="28" y1="31" x2="26" y2="38"/><line x1="35" y1="31" x2="33" y2="38"/>
	</svg>`,
	domain.IconSnow: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<path d="M12 22 Q12 15 19 15 Q20 10 26 10 Q33 10 33 17 Q38 17 38 22 Q38 27 33 27 L16 27 Q12 27 12 22 Z"/>
		<line x1="16" y1="32" x2="16" y2="34"/><line x1="14.5" y1="33" x2="17.5" y2="33"/>
		<line x1="24" y1="32" x2="24" y2="34"/><line x1="22.5" y1="33" x2="25.5" y2="33"/>
		<line x1="32" y1="32" x2="32" y2="34"/><line x1="30.5" y1="33" x2="33.5" y2="33"/>
		<line x1="20" y1="36" x2="20" y2="38"/><line x1="18.5" y1="37" x2="21.5" y2="37"/>
		<line x1="28" y1="36" x2="28" y2="38"/><line x1="26.5" y1="37" x2="29.5" y2="37"/>
	</svg>`,
	domain.IconShowers: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<path d="M12 22 Q12 15 19 15 Q20 10 26 10 Q33 10 33 17 Q38 17 38 22 Q38 27 33 27 L16 27 Q12 27 12 22 Z"/>
		<line x1="15" y1="31" x2="13" y2="36"/><line x1="22" y1="31" x2="20" y2="36"/>
		<line x1="29" y1="31" x2="27" y2="36"/><line x1="36" y1="31" x2="34" y2="36"/>
		<line x1="18" y1="36" x2="16" y2="41"/><line x1="32" y1="36" x2="30" y2="41"/>
	</svg>`,
	domain.IconThunderstorm: `<svg viewBox="0 0 48 48" fill="none" stroke="currentColor" stroke-width="2.5">
		<path d="M12 20 Q12 13 19 13 Q20 8 26 8 Q33 8 33 15 Q38 15 38 20 Q38 25 33 25 L16 25 Q12 25 12 20 Z"/>
		<polyline points="22,28 18,35 24,35 20,44" stroke-width="3"/>
	</svg>`,
}

// icon returns the SVG for category, falling back to the clear-sky icon.
func icon(category string) template.HTML {
	if svg, ok := icons[category]; ok {
		return svg
	}
	return icons[domain.IconClear]
}
