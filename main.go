package main

import "github.com/killallgit/readwise-api/cmd"

// @title           Readwise Highlights API
// @version         1.0
// @description     Load reading texts, highlight passages, annotate them with notes and render the result.
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/readwise-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /
func main() {
	cmd.Execute()
}
