// compileinfoprint is blank-imported by the gamstats binaries so that every
// run starts by logging which build produced it.
package compileinfoprint

import "github.com/carbocation/gamstats/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
