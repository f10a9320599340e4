// Package templates renders the selfcare pages as templ components.
//
// Every component takes a typed view and an i18n.Translator; nothing here
// reads request state, session state, or a current language.
package templates
