package main

var (
	HeroTagline = `Crafting intelligent web experiences at the intersection of design, code and AI.`

	AboutMe = `I love building software that is both useful and delightful, and I'm always curious about how
	things work behind the scenes. Most of my projects start with a simple idea and turn into a chance to
	learn something new, whether it's exploring a different language, experimenting with 3D on the web,
	or teaching a model a new trick.`

	ChatIntro = `Ask me anything about Ardama's background and experience.`

	ContactIntro = `Have a project in mind? Whether it's freelance work, a full-time role or a collaboration,
	I'd love to hear about it.`
)
