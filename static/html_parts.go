package static

var (
	Part1 = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="utf-8">
    <title>Центральные точки</title>
    <style>
        html, body { margin: 0; height: 100%; }
        body {
            background: #181a1b;
            color: #c9d1d9;
            font: 14px/1.4 "JetBrains Mono", Consolas, monospace;
        }
        .page { display: grid; grid-template-columns: 1fr 1fr; height: 100vh; }
        .pane { padding: 12px 16px; overflow: auto; }
        .pane + .pane { border-left: 3px solid #30363d; background: #0d1117; }
        h2 { margin: 4px 0 12px; font-weight: normal; }
        form { display: grid; grid-template-columns: max-content 1fr 1fr; gap: 6px 10px; align-items: center; }
        form label { grid-column: 1; }
        input {
            background: #21262d;
            color: inherit;
            border: 1px solid #30363d;
            border-radius: 3px;
            padding: 4px 6px;
        }
        input[type="submit"] { grid-column: 1 / span 3; justify-self: start; cursor: pointer; }
        input[type="submit"]:hover { background: #30363d; }
        #logs pre { margin: 0; white-space: pre-wrap; word-break: break-all; }
    </style>
</head>
<body>
<div class="page">
    <div class="pane">
`

	// Form - шаблон для fmt: width, height, points, seed, qx, qy
	Form = `
        <h2>Центральные точки множества</h2>
        <form id="params" method="POST">
            <label for="width">Холст W x H</label>
            <input type="number" id="width" name="width" value="%d" min="100" max="5000">
            <input type="number" id="height" name="height" value="%d" min="100" max="5000">
            <label for="points">Точек n, зерно</label>
            <input type="number" id="points" name="points" value="%d" min="1" max="200">
            <input type="number" id="seed" name="seed" value="%d">
            <label for="qx">Точка q (x, y)</label>
            <input type="number" id="qx" name="qx" value="%g" step="any">
            <input type="number" id="qy" name="qy" value="%g" step="any">
            <input type="submit" value="Проверить">
        </form>
`

	Part2 = `
    </div>
    <div class="pane">
        <h2>Логи</h2>
        <div id="logs">`

	Part3 = `
        </div>
    </div>
</div>
<script>
    // страница перерисовывается целиком ответом на POST
    document.getElementById('params').addEventListener('submit', async (e) => {
        e.preventDefault();
        const resp = await fetch('/', {
            method: 'POST',
            body: new URLSearchParams(new FormData(e.target)),
        });
        if (!resp.ok) {
            console.error('ошибка сервера', resp.status);
            return;
        }
        const html = await resp.text();
        document.open();
        document.write(html);
        document.close();
    });
</script>
</body>
</html>
`
)
