package report

// pageTemplate wraps rendered report content in a minimal standalone page.
const pageTemplate = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; color: #1f2937; }
h1, h2, h3 { color: #111827; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #d1d5db; padding: 0.4rem 0.8rem; text-align: left; }
blockquote { direction: rtl; text-align: right; border-right: 3px solid #9ca3af; border-left: none; margin: 0.5rem 0; padding: 0.2rem 0.8rem; color: #4b5563; }
code { background: #f3f4f6; padding: 0.1rem 0.3rem; border-radius: 3px; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`
