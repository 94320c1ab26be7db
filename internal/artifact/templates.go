package artifact

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Generated artifact paths, relative to the project root.
const (
	LintConfigPath     = ".eslintrc.json"
	FormatConfigPath   = ".prettierrc.json"
	EditorSettingsPath = ".vscode/settings.json"
	PreCommitHookPath  = ".husky/pre-commit"
	JestConfigPath     = "jest.config.js"
	JestSetupPath      = "jest.setup.js"
	SampleTestPath     = "src/App.test.jsx"
)

// Data holds the substitution variables available to artifact templates.
type Data struct {
	ProjectName    string
	SourceDir      string
	PackageManager string
}

// NewData builds the substitution record for a project.
func NewData(projectName string) Data {
	return Data{
		ProjectName:    projectName,
		SourceDir:      "src",
		PackageManager: "npm",
	}
}

const lintTemplate = `{
  "root": true,
  "env": { "browser": true, "es2022": true, "node": true },
  "extends": [
    "eslint:recommended",
    "plugin:react/recommended",
    "plugin:react-hooks/recommended",
    "prettier"
  ],
  "parserOptions": { "ecmaVersion": "latest", "sourceType": "module", "ecmaFeatures": { "jsx": true } },
  "settings": { "react": { "version": "detect" } },
  "rules": {
    "react/react-in-jsx-scope": "off"
  }
}
`

const formatTemplate = `{
  "semi": true,
  "singleQuote": true,
  "trailingComma": "es5",
  "printWidth": 100
}
`

const editorSettingsTemplate = `{
  "editor.defaultFormatter": "esbenp.prettier-vscode",
  "editor.formatOnSave": true,
  "editor.codeActionsOnSave": {
    "source.fixAll.eslint": "explicit"
  },
  "files.eol": "\n"
}
`

const preCommitTemplate = `#!/usr/bin/env sh
. "$(dirname -- "$0")/_/husky.sh"

{{.PackageManager}} run lint
{{.PackageManager}} run format
`

const jestConfigTemplate = `/** @type {import('jest').Config} */
module.exports = {
  testEnvironment: 'jsdom',
  setupFilesAfterEnv: ['<rootDir>/jest.setup.js'],
  moduleNameMapper: {
    '\\.(css|less|scss|sass)$': 'identity-obj-proxy',
    '^@/(.*)$': '<rootDir>/{{.SourceDir}}/$1'
  },
  testPathIgnorePatterns: ['/node_modules/'],
  collectCoverageFrom: ['{{.SourceDir}}/**/*.{js,jsx}']
};
`

const jestSetupTemplate = `import '@testing-library/jest-dom';
`

const sampleTestTemplate = `// Smoke test for the {{.ProjectName}} app shell.
import { render } from '@testing-library/react';
import App from './App';

test('renders without crashing', () => {
  render(<App />);
});
`

// LintConfig renders the ESLint configuration.
func LintConfig(d Data) (Artifact, error) {
	return render(LintConfigPath, lintTemplate, d, 0644)
}

// FormatConfig renders the Prettier configuration.
func FormatConfig(d Data) (Artifact, error) {
	return render(FormatConfigPath, formatTemplate, d, 0644)
}

// EditorSettings renders the shared editor settings.
func EditorSettings(d Data) (Artifact, error) {
	return render(EditorSettingsPath, editorSettingsTemplate, d, 0644)
}

// PreCommitHook renders the husky pre-commit hook script. The hook must be
// executable or git silently skips it.
func PreCommitHook(d Data) (Artifact, error) {
	return render(PreCommitHookPath, preCommitTemplate, d, 0755)
}

// JestConfig renders the test-runner configuration: style-sheet module
// mappings, the @/ source alias, and the jsdom environment.
func JestConfig(d Data) (Artifact, error) {
	return render(JestConfigPath, jestConfigTemplate, d, 0644)
}

// JestSetup renders the per-test-file setup module.
func JestSetup(d Data) (Artifact, error) {
	return render(JestSetupPath, jestSetupTemplate, d, 0644)
}

// SampleTest renders the starter test.
func SampleTest(d Data) (Artifact, error) {
	return render(SampleTestPath, sampleTestTemplate, d, 0644)
}

// render executes one template into a complete Artifact.
func render(path, tmpl string, d Data, mode os.FileMode) (Artifact, error) {
	t, err := template.New(filepath.Base(path)).Parse(tmpl)
	if err != nil {
		return Artifact{}, fmt.Errorf("parsing template for %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return Artifact{}, fmt.Errorf("rendering %s: %w", path, err)
	}

	return Artifact{Path: path, Content: buf.Bytes(), Mode: mode}, nil
}
