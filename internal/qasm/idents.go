package qasm

// declKinds maps a declaring keyword to the kind its name is recorded
// under. gate and opaque both declare gate names.
var declKinds = map[string]string{
	"qreg":   "qreg",
	"creg":   "creg",
	"qubit":  "qubit",
	"bit":    "bit",
	"gate":   "gate",
	"opaque": "gate",
}

// DeclKinds returns the kinds DeclaredIdentifiers reports, in a stable
// order.
func DeclKinds() []string {
	return []string{"qreg", "creg", "qubit", "bit", "gate"}
}

// DeclaredIdentifiers scans a token stream for declaration statements and
// returns the declared names per kind, de-duplicated, in first-seen order.
// A declaration is a declaring keyword immediately followed by an
// identifier; anything else is passed over. Every kind is present in the
// result, empty or not.
func DeclaredIdentifiers(tokens []Token) map[string][]string {
	out := make(map[string][]string, len(declKinds))
	for _, kind := range DeclKinds() {
		out[kind] = []string{}
	}

	seen := make(map[string]map[string]bool)
	for i, tok := range tokens {
		if tok.Type != TokenKeyword {
			continue
		}
		kind, ok := declKinds[tok.Value]
		if !ok {
			continue
		}
		if i+1 >= len(tokens) || tokens[i+1].Type != TokenIdentifier {
			continue
		}
		name := tokens[i+1].Value
		if seen[kind] == nil {
			seen[kind] = make(map[string]bool)
		}
		if seen[kind][name] {
			continue
		}
		seen[kind][name] = true
		out[kind] = append(out[kind], name)
	}
	return out
}
