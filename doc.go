// Package sandbox executes JavaScript code from Go in an embedded engine.
//
// The package focuses on calling standalone JS code from Go and tries to
// remain as simple as possible in doing so. The typical use case is a core Go
// application that integrates with scripts from external users, for example a
// plugin system or a game that runs external mods. It is not tailored to JS's
// biggest domain as a client/server side language of the web: there is no
// module system, no DOM, and values cross the boundary as JSON.
//
// Call a JS function:
//
//	func main() {
//		script, err := sandbox.FromString("function triple(a) { return 3 * a; }")
//		if err != nil {
//			panic(err)
//		}
//		defer script.Close()
//
//		var result int
//		if err = script.Call("triple", 7, &result); err != nil {
//			panic(err)
//		}
//		fmt.Println(result) // 21
//	}
//
// Maintain state in JavaScript:
//
//	script, _ := sandbox.FromString(`
//		var total = '';
//		function append(str) { total += str; }
//		function get()       { return total; }`)
//	_ = script.Call("append", "hello", nil)
//	_ = script.Call("append", " world", nil)
//	var total string
//	_ = script.Call("get", nil, &total)
//	fmt.Println(total) // hello world
//
// Call with a timeout:
//
//	script, _ := sandbox.FromString("function run_forever() { for(;;){} }")
//	err := script.CallTimeout("run_forever", nil, nil, time.Second)
//	fmt.Println(err) // Uncaught Error: execution terminated
package sandbox
