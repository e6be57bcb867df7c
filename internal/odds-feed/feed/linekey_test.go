package feed

import "testing"

func TestParseLineKey(t *testing.T) {
	tests := []struct {
		raw  string
		want LineKey
	}{
		{"si0:ms7:an0", LineKey{Side: 0, SportsbookID: 7, Alternate: 0}},
		{"si1:ms13:an0", LineKey{Side: 1, SportsbookID: 13, Alternate: 0}},
		{"si0:ms1000:an2", LineKey{Side: 0, SportsbookID: 1000, Alternate: 2}},
	}
	for _, tt := range tests {
		got, err := ParseLineKey(tt.raw)
		if err != nil {
			t.Errorf("ParseLineKey(%q) retornou erro: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLineKey(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestParseLineKeyInvalid(t *testing.T) {
	// qualquer desvio do formato "si<int>:ms<int>:an<int>" deve falhar
	invalid := []string{
		"",
		"si0:ms7",             // faltando segmento
		"si0:ms7:an0:extra",   // segmento a mais
		"ms7:si0:an0",         // ordem trocada
		"si:ms7:an0",          // sufixo vazio
		"siX:ms7:an0",         // sufixo não numérico
		"si0:ms-7:an0",        // valor negativo
		"si2:ms7:an0",         // side fora de 0/1
		"SI0:ms7:an0",         // prefixo é case-sensitive
		"si0 :ms7:an0",        // espaço não é tolerado
		"si0:ms7.5:an0",       // não inteiro
	}
	for _, raw := range invalid {
		if _, err := ParseLineKey(raw); err == nil {
			t.Errorf("ParseLineKey(%q) deveria falhar", raw)
		}
	}
}

func TestIsMainLine(t *testing.T) {
	if !(LineKey{Alternate: 0}).IsMainLine() {
		t.Error("an0 deveria ser linha principal")
	}
	if (LineKey{Alternate: 1}).IsMainLine() {
		t.Error("an1 não deveria ser linha principal")
	}
}
