// Package contact validates contact form submissions, records them and hands
// the resulting message to an interfaces.Mailer.
package contact
