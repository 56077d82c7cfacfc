package lazylog

// ResetForTest discards the global logger so a test can re-run Init with
// fresh options. Any unflushed records are lost.
func ResetForTest() {
	resetGlobal()
}
