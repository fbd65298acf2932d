package token_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fileman-cli/fileman/internal/token"
)

var _ = Describe("Parse", func() {
	It("splits a line into a command name and arguments", func() {
		command, err := token.Parse("cp src dest")
		Expect(err).NotTo(HaveOccurred())
		Expect(command.Name).To(Equal("cp"))
		Expect(command.Args).To(Equal([]string{"src", "dest"}))
	})

	It("parses a bare command without arguments", func() {
		command, err := token.Parse("ls")
		Expect(err).NotTo(HaveOccurred())
		Expect(command.Name).To(Equal("ls"))
		Expect(command.Args).To(BeEmpty())
	})

	It("treats a double-quoted span as one argument with the quotes stripped", func() {
		command, err := token.Parse(`cp "my file.txt" dest`)
		Expect(err).NotTo(HaveOccurred())
		Expect(command.Name).To(Equal("cp"))
		Expect(command.Args).To(Equal([]string{"my file.txt", "dest"}))
	})

	It("does not unescape backslashes inside quotes", func() {
		command, err := token.Parse(`cat "a\nb"`)
		Expect(err).NotTo(HaveOccurred())
		Expect(command.Args).To(Equal([]string{`a\nb`}))
	})

	It("allows an empty quoted argument", func() {
		command, err := token.Parse(`add ""`)
		Expect(err).NotTo(HaveOccurred())
		Expect(command.Args).To(Equal([]string{""}))
	})

	It("collapses repeated whitespace between tokens", func() {
		command, err := token.Parse("  rn \t old.txt   new.txt ")
		Expect(err).NotTo(HaveOccurred())
		Expect(command.Name).To(Equal("rn"))
		Expect(command.Args).To(Equal([]string{"old.txt", "new.txt"}))
	})

	It("yields no command for a blank line", func() {
		command, err := token.Parse("   \t  ")
		Expect(err).NotTo(HaveOccurred())
		Expect(command).To(BeNil())
	})

	It("fails on an unterminated quote", func() {
		command, err := token.Parse(`cat "unterminated`)
		Expect(err).To(HaveOccurred())
		Expect(command).To(BeNil())
	})
})
