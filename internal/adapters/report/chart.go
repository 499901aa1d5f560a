package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kamal-hamza/skillsheet/internal/core/services"
)

// PageTitle is the HTML title of the stats report
const PageTitle = "KOF97 出招表统计"

// StatsPage builds a page with a moves-per-character bar chart and a move
// type pie chart.
func StatsPage(stats *services.StatsResponse) *components.Page {
	page := components.NewPage()
	page.PageTitle = PageTitle
	page.AddCharts(movesBar(stats), typesPie(stats))
	return page
}

// RenderStats writes the stats page as standalone HTML
func RenderStats(w io.Writer, stats *services.StatsResponse) error {
	if err := StatsPage(stats).Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func movesBar(stats *services.StatsResponse) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "招式数量",
			Subtitle: fmt.Sprintf("共 %d 名角色，%d 招", len(stats.Characters), stats.TotalSkills),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	names := make([]string, len(stats.Characters))
	skills := make([]opts.BarData, len(stats.Characters))
	images := make([]opts.BarData, len(stats.Characters))
	for i, c := range stats.Characters {
		names[i] = c.Name
		skills[i] = opts.BarData{Value: c.Skills}
		images[i] = opts.BarData{Value: c.Images}
	}

	bar.SetXAxis(names).
		AddSeries("招式", skills).
		AddSeries("图片", images)
	return bar
}

func typesPie(stats *services.StatsResponse) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "招式类型"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	items := make([]opts.PieData, len(stats.Types))
	for i, tc := range stats.Types {
		items[i] = opts.PieData{Name: tc.Type, Value: tc.Count}
	}

	pie.AddSeries("类型", items)
	return pie
}
