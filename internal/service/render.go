package service

import (
	"fmt"
	"strings"

	"outage_notifier/internal/domain"
)

// Renderer builds the localized delivery text for an announcement. Labels
// cover the three languages the providers publish in; unknown locales fall
// back to English.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

var sourceLabels = map[string]map[domain.OutageSource]string{
	"hy": {domain.SourceWater: "Ջրամատակարարում", domain.SourceGas: "Գազամատակարարում", domain.SourceElectric: "Էլեկտրամատակարարում"},
	"ru": {domain.SourceWater: "Водоснабжение", domain.SourceGas: "Газоснабжение", domain.SourceElectric: "Электроснабжение"},
	"en": {domain.SourceWater: "Water supply", domain.SourceGas: "Gas supply", domain.SourceElectric: "Electricity"},
}

var kindLabels = map[string]map[domain.OutageKind]string{
	"hy": {domain.KindPlanned: "պլանային անջատում", domain.KindEmergency: "վթարային անջատում"},
	"ru": {domain.KindPlanned: "плановое отключение", domain.KindEmergency: "аварийное отключение"},
	"en": {domain.KindPlanned: "planned outage", domain.KindEmergency: "emergency outage"},
}

var windowLabels = map[string]string{
	"hy": "Ժամանակահատված",
	"ru": "Период",
	"en": "Window",
}

// Render produces the message text for one (subscriber, announcement) pair.
func (r *Renderer) Render(locale string, ann *domain.Announcement) string {
	if _, ok := sourceLabels[locale]; !ok {
		locale = "en"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", sourceLabels[locale][ann.Source], kindLabels[locale][ann.Kind])
	fmt.Fprintf(&b, "%s: %s - %s",
		windowLabels[locale],
		ann.StartAt.Format("02.01.2006 15:04"),
		ann.EndAt.Format("02.01.2006 15:04"),
	)
	if ann.Reason != "" {
		fmt.Fprintf(&b, "\n%s", ann.Reason)
	}
	return b.String()
}
