package report

import "html/template"

// chartScript draws the two report charts on plain canvas elements. It is
// minified at render time; keep it dependency-free so the report works
// offline.
const chartScript = `
function drawBars(canvasId, labels, values, color, yMax) {
	var canvas = document.getElementById(canvasId);
	if (!canvas || labels.length === 0) return;
	var ctx = canvas.getContext('2d');
	var w = canvas.width, h = canvas.height;
	var pad = 36;
	var max = yMax;
	if (!max) {
		max = 0;
		for (var i = 0; i < values.length; i++) if (values[i] > max) max = values[i];
		if (max === 0) max = 1;
	}
	var barW = (w - 2 * pad) / labels.length;
	ctx.clearRect(0, 0, w, h);
	ctx.strokeStyle = '#999';
	ctx.beginPath();
	ctx.moveTo(pad, 8);
	ctx.lineTo(pad, h - pad);
	ctx.lineTo(w - 8, h - pad);
	ctx.stroke();
	ctx.fillStyle = color;
	ctx.font = '10px sans-serif';
	for (var i = 0; i < labels.length; i++) {
		var bh = (values[i] / max) * (h - pad - 16);
		ctx.fillRect(pad + i * barW + 1, h - pad - bh, Math.max(barW - 2, 1), bh);
		if (labels.length <= 20 || i % Math.ceil(labels.length / 20) === 0) {
			ctx.save();
			ctx.fillStyle = '#444';
			ctx.fillText(labels[i], pad + i * barW, h - pad + 12);
			ctx.restore();
		}
	}
}

var data = window.REPORT_DATA;
drawBars('histogram', data.bucket_labels, data.bucket_counts, '#4CAF50');
drawBars('impact', data.objectives, data.impact_scores, '#FF9800', 10);
`

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>riskcast report — {{.Data.PlanName}}</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 860px; color: #222; }
h1 { font-size: 1.4em; } h2 { font-size: 1.1em; margin-top: 1.6em; }
table { border-collapse: collapse; margin-top: 0.6em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th { background: #f3f3f3; }
.meta { color: #777; font-size: 0.85em; }
canvas { margin-top: 0.6em; border: 1px solid #eee; }
</style>
</head>
<body>
<h1>Schedule &amp; Risk Forecast — {{.Data.PlanName}}</h1>
<p class="meta">Generated {{.Data.Generated.Format "2006-01-02 15:04"}} · {{.Data.Summary.Trials}} trials</p>

<h2>Completion Summary</h2>
<table>
<tr><th></th><th>Duration (days)</th><th>Date</th></tr>
<tr><td>Earliest</td><td>{{printf "%.1f" .Data.Summary.MinDays}}</td><td>{{.Data.Summary.Earliest.Format "2006-01-02"}}</td></tr>
<tr><td>Most likely</td><td>{{printf "%.1f" .Data.Summary.MeanDays}}</td><td>{{.Data.Summary.Likely.Format "2006-01-02"}}</td></tr>
<tr><td>Latest</td><td>{{printf "%.1f" .Data.Summary.MaxDays}}</td><td>{{.Data.Summary.Latest.Format "2006-01-02"}}</td></tr>
</table>

{{if .Data.Confidence}}
<h2>Confidence Levels</h2>
<table>
<tr><th>Confidence</th><th>Duration (days)</th><th>Completion Date</th></tr>
{{range .Data.Confidence}}
<tr><td>{{printf "%.0f%%" .Percentile}}</td><td>{{printf "%.1f" .Days}}</td><td>{{.Date.Format "2006-01-02"}}</td></tr>
{{end}}
</table>
{{end}}

<h2>Duration Distribution</h2>
<canvas id="histogram" width="820" height="260"></canvas>

{{if .Data.Combined.Objectives}}
<h2>Combined Risk Impact by Objective (0–10)</h2>
<canvas id="impact" width="820" height="260"></canvas>
{{end}}

<script>window.REPORT_DATA = {{.Payload}};</script>
<script>{{.Script}}</script>
</body>
</html>
`))
