package proc

import (
	"reflect"
	"testing"
)

func TestParseTasklist(t *testing.T) {
	out := "\r\n" +
		"Image Name                     PID Session Name        Session#    Mem Usage\r\n" +
		"========================= ======== ================ =========== ============\r\n" +
		"System Idle Process              0 Services                   0          8 K\r\n" +
		"smss.exe                       384 Services                   0      1,024 K\r\n" +
		"Notepad.EXE                   5044 Console                    1     14,500 K\r\n" +
		"chrome.exe                    6120 Console                    1    214,224 K\r\n"

	got := parseTasklist(out)
	want := []string{"smss.exe", "Notepad.EXE", "chrome.exe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseTasklist() = %v, want %v", got, want)
	}
}

func TestParseTasklist_Empty(t *testing.T) {
	if got := parseTasklist(""); len(got) != 0 {
		t.Errorf("parseTasklist(\"\") = %v, want empty", got)
	}
}

func TestParsePSComm(t *testing.T) {
	out := "systemd\n" +
		"[kthreadd]\n" +
		"/usr/bin/dbus-daemon\n" +
		"\n" +
		"chrome\n"

	got := parsePSComm(out)
	want := []string{"systemd", "dbus-daemon", "chrome"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parsePSComm() = %v, want %v", got, want)
	}
}
