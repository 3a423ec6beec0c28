package studio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YogendraNeeladri/CipherStudio/internal/projects/domain"
)

// Template is a named starter file set for new projects.
type Template struct {
	Name  string            `yaml:"name"`
	Files map[string]string `yaml:"files"`
}

// Catalog maps template IDs to starter templates.
type Catalog struct {
	Templates map[string]Template `yaml:"templates"`
}

// ProjectFiles converts a template's file set into a project file map.
func (t Template) ProjectFiles() map[string]domain.ProjectFile {
	files := make(map[string]domain.ProjectFile, len(t.Files))
	for path, code := range t.Files {
		files[path] = domain.ProjectFile{Code: code}
	}
	return files
}

// Lookup returns the template for id, falling back to DefaultTemplateID.
func (c *Catalog) Lookup(id string) Template {
	if t, ok := c.Templates[id]; ok {
		return t
	}
	return c.Templates[DefaultTemplateID]
}

// LoadCatalog parses a template catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses a template catalog from YAML bytes.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Templates) == 0 {
		return nil, fmt.Errorf("catalog defines no templates")
	}
	return &c, nil
}

// DefaultTemplateID is the template used when none is named.
const DefaultTemplateID = "react"

// DefaultCatalog returns the built-in starter templates.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog([]byte(builtinCatalog))
	if err != nil {
		// The built-in catalog is a compile-time constant; failing to
		// parse it is a programming error.
		panic(err)
	}
	return c
}

const builtinCatalog = `
templates:
  react:
    name: React
    files:
      App.js: |
        import React from 'react';
        import './App.css';

        function App() {
          const [count, setCount] = React.useState(0);

          return (
            <div className="App">
              <header className="App-header">
                <h1>Welcome to CipherStudio!</h1>
                <p>Start building your React app here.</p>
                <button
                  onClick={() => setCount(count + 1)}
                  className="counter-button"
                >
                  Count: {count}
                </button>
              </header>
            </div>
          );
        }

        export default App;
      App.css: |
        .App {
          text-align: center;
          padding: 2rem;
        }

        .App-header {
          background-color: #282c34;
          padding: 2rem;
          color: white;
          border-radius: 8px;
          margin: 1rem 0;
        }

        .counter-button {
          background-color: #61dafb;
          border: none;
          padding: 1rem 2rem;
          font-size: 1.2rem;
          border-radius: 4px;
          cursor: pointer;
          margin-top: 1rem;
        }
      index.js: |
        import React from 'react';
        import ReactDOM from 'react-dom/client';
        import App from './App';

        const root = ReactDOM.createRoot(document.getElementById('root'));
        root.render(
          <React.StrictMode>
            <App />
          </React.StrictMode>
        );
  vanilla:
    name: Vanilla JS
    files:
      index.js: |
        document.getElementById('app').textContent = 'Hello, CipherStudio!';
      index.html: |
        <!DOCTYPE html>
        <html>
          <body>
            <div id="app"></div>
            <script src="index.js"></script>
          </body>
        </html>
`
