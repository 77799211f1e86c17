package ui

// Inline templates keep the web layer self-contained; there is no static
// asset pipeline to serve.

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>tablescrub - CSV quality check</title>
  <style>
    body { font-family: sans-serif; max-width: 640px; margin: 3em auto; }
    .error { color: #b00020; }
    fieldset { border: 1px solid #ccc; padding: 1em; }
  </style>
</head>
<body>
  <h1>CSV quality check &amp; clean</h1>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form action="/upload" method="post" enctype="multipart/form-data">
    <fieldset>
      <p><label>Dataset (CSV): <input type="file" name="dataset" accept=".csv" required></label></p>
      <p><label>Fill strategy:
        <select name="fill_strategy">
          <option value="auto" selected>auto (mean / mode)</option>
          <option value="mean">mean</option>
          <option value="median">median</option>
          <option value="mode">mode</option>
          <option value="empty">empty</option>
        </select>
      </label></p>
      <p><button type="submit">Analyze &amp; clean</button></p>
    </fieldset>
  </form>
</body>
</html>
`

const resultsTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>tablescrub - results</title>
  <style>
    body { font-family: sans-serif; max-width: 720px; margin: 3em auto; }
    .score { font-size: 2em; }
    table { border-collapse: collapse; }
    td, th { border: 1px solid #ccc; padding: 0.3em 0.7em; }
  </style>
</head>
<body>
  <h1>Cleaning complete</h1>
  <p class="score">Health score: {{.HealthScore}}%</p>
  <p>{{.OriginalRows}} rows in, {{.CleanedRows}} rows out.</p>
  <h2>Downloads</h2>
  <ul>
    {{range .Downloads}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}
  </ul>
  {{.Digest}}
  <p><a href="/">Clean another file</a></p>
</body>
</html>
`
