// Package project models one scaffolding run: the validated project name,
// the resolved target directory, and the feature selections collected from
// the user. Input parsing happens here exactly once; downstream steps only
// ever see the typed Context.
package project
