// Package mimetype determines the MIME type of a file for the mailcap
// lookup. Sources are consulted in order and the first answer wins:
// mime.types databases by extension, shared-mime-info glob rules, and
// finally the file content itself.
package mimetype
