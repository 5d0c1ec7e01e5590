package templates

// frontendApp is the Dash application entry point. It expects the
// dash-mantine-components package to be installed.
const frontendApp = `import dash
import dash_mantine_components as dmc

app = dash.Dash(__name__)
app.layout = dmc.MantineProvider(
    children=dmc.Container(
        [
            dmc.Title("Hello DMC world", order=1),
            dmc.Text("Dash Mantine Components project skeleton"),
            dmc.Button("Get started", color="blue"),
        ]
    )
)

if __name__ == "__main__":
    app.run(debug=True)
`

const pageHomeLayout = `import dash_mantine_components as dmc
from dash.development.base_component import Component


def HomeLayout() -> Component:
    return dmc.Container(
        [
            dmc.Title("Home", order=2),
            dmc.Text("Welcome to the home page."),
            dmc.Button("Home action"),
        ]
    )
`

const pageDashboardLayout = `import dash_mantine_components as dmc
from dash.development.base_component import Component


def DashboardLayout() -> Component:
    return dmc.Container(
        [
            dmc.Title("Dashboard", order=2),
            dmc.Text("This is the dashboard page."),
            dmc.Button("Dashboard action"),
        ]
    )
`
