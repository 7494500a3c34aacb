// Package audit emits security-relevant events in RFC5424 syslog line
// format: authentication outcomes and article mutations. Events go to
// stdout by default; CONDUIT_AUDIT_ENABLED=false disables emission.
package audit
