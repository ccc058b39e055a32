package hub

import (
	"encoding/json"
	"testing"
)

const ktxRecord = `{
	"matchtag": "",
	"map": "dm2",
	"hostname": "quake.se KTX #1",
	"port": 28501,
	"dm": 3,
	"tp": 0,
	"tl": 10,
	"duration": 600,
	"players": [
		{
			"name": "ParadokS",
			"top-color": 4,
			"bottom-color": 4,
			"ping": 13,
			"stats": {"frags": 23, "deaths": 11, "tk": 0, "spawn-frags": 2, "suicides": 1},
			"dmg": {"taken": 4100, "given": 6200, "team": 0, "self": 350, "team-weapons": 0, "enemy-weapons": 5900, "taken-to-die": 341},
			"spree": {"max": 7, "quad": 0},
			"speed": {"max": 912.4, "avg": 311.7},
			"weapons": {
				"rl": {
					"acc": {"attacks": 60, "hits": 22, "virtual": 31},
					"pickups": {"dropped": 3, "taken": 9},
					"damage": {"enemy": 3900, "team": 0},
					"kills": {"enemy": 14, "team": 0}
				}
			},
			"items": {
				"ya": {"took": 6, "time": 0},
				"q": {"took": 2, "time": 55}
			},
			"xferRL": 1
		},
		{
			"name": "rst",
			"top-color": 13,
			"bottom-color": 13,
			"ping": 26,
			"stats": {"frags": 11, "deaths": 23, "tk": 0, "spawn-frags": 0, "suicides": 0},
			"dmg": {"taken": 6200, "given": 4100, "team": 0, "self": 100, "team-weapons": 0, "enemy-weapons": 4000, "taken-to-die": 258},
			"spree": {"max": 3, "quad": 0},
			"speed": {"max": 870.0, "avg": 290.2}
		}
	]
}`

func TestKTXStatsDecode(t *testing.T) {
	var ktx KTXStats
	if err := json.Unmarshal([]byte(ktxRecord), &ktx); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ktx.Map != "dm2" || ktx.DM != 3 || ktx.Duration != 600 {
		t.Errorf("header decoded wrong: %+v", ktx)
	}
	if len(ktx.Players) != 2 {
		t.Fatalf("decoded %d players, want 2", len(ktx.Players))
	}

	p, err := ktx.Players[0].ToPlayer(12345, "Europe")
	if err != nil {
		t.Fatalf("ToPlayer: %v", err)
	}
	if p.Name != "ParadokS" || p.Region != "Europe" || p.MatchID != 12345 {
		t.Errorf("identity fields wrong: %+v", p)
	}
	if p.Frags != 23 || p.Deaths != 11 || p.Ping != 13 {
		t.Errorf("stat group wrong: frags=%d deaths=%d ping=%d", p.Frags, p.Deaths, p.Ping)
	}
	if p.RLAttacks != 60 || p.RLVirtual != 31 || p.RLDirects != 22 || p.RLTransfer != 1 {
		t.Errorf("rl group wrong: %+v", p)
	}
	if p.YATaken != 6 || p.QuadTaken != 2 || p.QuadTime != 55 {
		t.Errorf("item group wrong: ya=%d quad=%d quadtime=%d", p.YATaken, p.QuadTaken, p.QuadTime)
	}

	// The second player carries no weapons or items blocks at all; every
	// optional field defaults to zero.
	q, err := ktx.Players[1].ToPlayer(12345, "Europe")
	if err != nil {
		t.Fatalf("ToPlayer: %v", err)
	}
	if q.RLAttacks != 0 || q.LGAttacks != 0 || q.RATaken != 0 || q.RLTransfer != 0 {
		t.Errorf("missing optional groups should decode to zero: %+v", q)
	}
}

func TestToPlayerMissingRequiredGroup(t *testing.T) {
	ping := 12
	color := 4
	stats := ktxFrags{Frags: 1}
	dmg := ktxDamage{Given: 100}
	spree := ktxSpree{}
	speed := ktxSpeed{}

	complete := KTXPlayer{
		Name: "x", TopColor: &color, BottomColor: &color, Ping: &ping,
		Stats: &stats, Dmg: &dmg, Spree: &spree, Speed: &speed,
	}
	if _, err := complete.ToPlayer(1, "Europe"); err != nil {
		t.Fatalf("complete record should convert: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*KTXPlayer)
	}{
		{"no ping", func(p *KTXPlayer) { p.Ping = nil }},
		{"no colors", func(p *KTXPlayer) { p.TopColor = nil }},
		{"no stats", func(p *KTXPlayer) { p.Stats = nil }},
		{"no dmg", func(p *KTXPlayer) { p.Dmg = nil }},
		{"no spree", func(p *KTXPlayer) { p.Spree = nil }},
		{"no speed", func(p *KTXPlayer) { p.Speed = nil }},
	}
	for _, test := range tests {
		broken := complete
		test.mutate(&broken)
		if _, err := broken.ToPlayer(1, "Europe"); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestToPlayerEscapesNames(t *testing.T) {
	ping, color := 0, 0
	p := KTXPlayer{
		Name: "x", Team: "á",
		TopColor: &color, BottomColor: &color, Ping: &ping,
		Stats: &ktxFrags{}, Dmg: &ktxDamage{}, Spree: &ktxSpree{}, Speed: &ktxSpeed{},
	}
	got, err := p.ToPlayer(1, "Europe")
	if err != nil {
		t.Fatalf("ToPlayer: %v", err)
	}
	if got.Name != `\21\22x` {
		t.Errorf("name not escaped: %q", got.Name)
	}
	if got.Team != `\5a` {
		t.Errorf("team not escaped: %q", got.Team)
	}
}

func TestDedupePlayers(t *testing.T) {
	players := []KTXPlayer{{Name: "a"}, {Name: "b"}, {Name: "a"}, {Name: "c"}, {Name: "b"}}
	got := DedupePlayers(players)
	if len(got) != 3 {
		t.Fatalf("got %d players, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Name != want {
			t.Errorf("player %d: got '%s', want '%s'", i, got[i].Name, want)
		}
	}
}
