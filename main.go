package main

import "ai_blog_assistant/cmd"

func main() {
	cmd.Execute()
}
