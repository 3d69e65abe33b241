package enumerate

// Standard holds the subdomain labels probed on every run.
var Standard = []string{
	"www", "mail", "ftp", "smtp", "pop", "imap", "webmail",
	"admin", "blog", "shop", "store", "api", "cdn", "static",
	"img", "images", "assets", "files", "download", "uploads",
	"dev", "test", "staging", "beta", "demo", "support",
	"help", "docs", "wiki", "forum", "news", "mobile", "m",
	"app", "secure", "vpn", "remote", "portal", "login",
	"cpanel", "whm", "ns1", "ns2", "mx1", "mx2",
}

// RFCServices holds host names defined or conventionally used by RFC-described
// services (mail autoconfiguration, directory, time, real-time communication).
// Skipped with --skip-rfc.
var RFCServices = []string{
	"autodiscover", "autoconfig", "mta-sts", "openpgpkey", "wpad", "isatap",
	"ldap", "ldaps", "kerberos", "kdc", "ntp", "time",
	"sip", "sips", "xmpp", "jabber", "conference", "irc", "nntp",
	"caldav", "carddav", "calendar", "webdav", "dav",
	"stun", "turn", "radius", "snmp", "syslog",
	"ssh", "sftp", "rdp", "proxy", "socks",
	"dns", "ns3", "ns4", "mx", "relay", "pop3",
	"lyncdiscover", "matrix",
}
