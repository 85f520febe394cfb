package domain

import (
	"fmt"
	"strings"
)

// highlightRules wrap hazard keywords and lightning phrases in emphasis
// markup. The targets are mutually disjoint substrings, so replacement order
// does not matter and no target can be wrapped twice.
var highlightRules = []struct {
	target      string
	replacement string
}{
	{"WARNINGS", `<span class="hazard hazard-warning">WARNINGS</span>`},
	{"WATCHES", `<span class="hazard hazard-watch">WATCHES</span>`},
	{"ADVISORIES", `<span class="hazard hazard-advisory">ADVISORIES</span>`},
	{"frequent lightning", `<em class="lightning">frequent lightning</em>`},
	{"dangerous lightning", `<em class="lightning">dangerous lightning</em>`},
	{"cloud-to-ground lightning", `<em class="lightning">cloud-to-ground lightning</em>`},
}

// Highlight wraps every literal occurrence of the hazard keywords and
// lightning phrases in fixed emphasis markup. Condition text is trusted and
// static, so no other escaping is performed.
func Highlight(s string) string {
	for _, rule := range highlightRules {
		s = strings.ReplaceAll(s, rule.target, rule.replacement)
	}
	return s
}

// RenderReport renders the report as the HTML fragment that replaces the
// placeholder block in the published page.
func RenderReport(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p class=\"check-time\">Conditions checked: %s</p>\n", r.CheckTimeLabel)
	fmt.Fprintf(&b, "<p class=\"date-range\">5-Day Outlook: %s</p>\n", r.DateRangeLabel)

	b.WriteString("<div class=\"tropical-outlook\">\n<h3>Atlantic Tropical Outlook</h3>\n")
	outlookText := r.Outlook.OutlookText
	if strings.TrimSpace(outlookText) == "" {
		outlookText = "Tropical outlook not available."
	}
	chance := r.Outlook.FormationChance
	if chance == "" {
		chance = "N/A"
	}
	fmt.Fprintf(&b, "<p>%s</p>\n", outlookText)
	fmt.Fprintf(&b, "<p class=\"formation-chance\">Formation chance: <span class=\"chance-badge\">%s</span></p>\n</div>\n", chance)

	b.WriteString("<ul class=\"jurisdictions\">\n")
	for _, s := range r.Summaries {
		fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>\n", s.Name, Highlight(s.Conditions))
	}
	b.WriteString("</ul>\n")

	b.WriteString(`<div class="recommendations">
<h3>Recommendations</h3>
<ul>
<li>Review your household emergency plan and supply kit.</li>
<li>Sign up for local emergency alerts in your county or municipality.</li>
<li>During hurricane season, know your evacuation zone and route.</li>
</ul>
</div>
`)
	b.WriteString("<p class=\"sources\">Sources: National Weather Service (weather.gov) and National Hurricane Center (hurricanes.gov).</p>\n")

	return b.String()
}
