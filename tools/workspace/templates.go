package workspace

// Template is a named project skeleton. Files maps relative paths inside
// the new project to their starter content.
type Template struct {
	Name        string
	Description string
	Files       map[string]string
}

var builtinTemplates = map[string]Template{
	"llm-app": {
		Name:        "llm-app",
		Description: "Minimal LLM application skeleton.",
		Files: map[string]string{
			"README.md":        "# LLM App\n\nA starting point for an LLM powered application.\n",
			"requirements.txt": "google-generativeai\n",
			"app.py":           "def main():\n    print(\"hello from llm-app\")\n\n\nif __name__ == \"__main__\":\n    main()\n",
		},
	},
	"api-app": {
		Name:        "api-app",
		Description: "Minimal HTTP API skeleton.",
		Files: map[string]string{
			"README.md":        "# API App\n\nA starting point for an HTTP API.\n",
			"requirements.txt": "fastapi\nuvicorn\n",
			"main.py":          "from fastapi import FastAPI\n\napp = FastAPI()\n\n\n@app.get(\"/\")\ndef index():\n    return {\"status\": \"ok\"}\n",
		},
	},
	"django-app": {
		Name:        "django-app",
		Description: "Minimal Django project skeleton.",
		Files: map[string]string{
			"README.md":        "# Django App\n\nA starting point for a Django project.\n",
			"requirements.txt": "django\n",
			"manage.py":        "#!/usr/bin/env python\nimport sys\n\nif __name__ == \"__main__\":\n    print(\"run django-admin to finish setup\", file=sys.stderr)\n",
		},
	},
	"streamlit-app": {
		Name:        "streamlit-app",
		Description: "Minimal Streamlit dashboard skeleton.",
		Files: map[string]string{
			"README.md":        "# Streamlit App\n\nA starting point for a Streamlit dashboard.\n",
			"requirements.txt": "streamlit\n",
			"app.py":           "import streamlit as st\n\nst.title(\"hello from streamlit-app\")\n",
		},
	},
}

// Templates lists the available template names.
func Templates() []string {
	names := make([]string, 0, len(builtinTemplates))
	for name := range builtinTemplates {
		names = append(names, name)
	}
	return names
}
