package format

import "testing"

func TestDateTime(t *testing.T) {
	cases := map[string]bool{
		"2026-08-06T12:00:00Z":        true,
		"2026-08-06T12:00:00.123Z":    true,
		"2026-08-06T12:00:00+02:00":   true,
		"not-a-date":                  false,
		"2026-08-06":                  false,
	}
	for in, want := range cases {
		if got := DateTime(in); got != want {
			t.Errorf("DateTime(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDate(t *testing.T) {
	if !Date("2026-08-06") {
		t.Error("expected valid date")
	}
	if Date("2026-08-06T00:00:00Z") {
		t.Error("expected date-time string to be rejected as a bare date")
	}
}

func TestTime(t *testing.T) {
	if !Time("12:00:00Z") {
		t.Error("expected valid time")
	}
	if !Time("12:00:00.5+02:00") {
		t.Error("expected valid time with offset and fraction")
	}
	if Time("not-a-time") {
		t.Error("expected rejection")
	}
}

func TestEmail(t *testing.T) {
	if !Email("a@example.com") {
		t.Error("expected valid email")
	}
	if Email("not an email") {
		t.Error("expected rejection")
	}
	if Email("Name <a@example.com>") {
		t.Error("expected display-name form to be rejected")
	}
}

func TestHostname(t *testing.T) {
	if !Hostname("example.com") {
		t.Error("expected valid hostname")
	}
	if Hostname("-bad.example.com") {
		t.Error("expected rejection of leading hyphen label")
	}
	if Hostname("") {
		t.Error("expected rejection of empty string")
	}
}

func TestIPv4(t *testing.T) {
	if !IPv4("192.168.0.1") {
		t.Error("expected valid ipv4")
	}
	if IPv4("::1") {
		t.Error("expected ipv6 address to be rejected by IPv4")
	}
}

func TestIPv6(t *testing.T) {
	if !IPv6("::1") {
		t.Error("expected valid ipv6")
	}
	if IPv6("192.168.0.1") {
		t.Error("expected ipv4 address to be rejected by IPv6")
	}
}

func TestRegex(t *testing.T) {
	if !Regex("^[a-z]+$") {
		t.Error("expected valid regex")
	}
	if Regex("(unterminated") {
		t.Error("expected rejection")
	}
}
