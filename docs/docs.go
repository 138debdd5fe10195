// package docs loads a directory of text documents into a Map and moves that Map in and out of a generated page.
package docs

// Ext is the extension of the documents we bundle.
const Ext = ".md"

// Map is every loaded document, keyed by filename (extension included).
type Map map[string]string
