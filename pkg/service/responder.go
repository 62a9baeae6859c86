// Canned reply generation - stands in for a real model backend
package service

import "strings"

// Responder produces an assistant reply for a user message. The conversation
// store depends only on this interface so a real inference backend can be
// substituted without touching store logic.
type Responder interface {
	GenerateReply(userText string) string
}

// ResponderFunc adapts a plain function to the Responder interface.
type ResponderFunc func(userText string) string

func (f ResponderFunc) GenerateReply(userText string) string { return f(userText) }

// responseRule maps trigger keywords to a canned reply. Rules are checked
// in order; the first keyword found in the message wins.
type responseRule struct {
	keywords []string
	reply    string
}

// KeywordResponder selects a canned reply by case-insensitive substring
// matching on the user's message.
type KeywordResponder struct {
	rules    []responseRule
	fallback string
}

// NewKeywordResponder creates a responder with the built-in coding replies.
func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{
		rules: []responseRule{
			{keywords: []string{"react"}, reply: reactReply},
			{keywords: []string{"javascript", "js", "code"}, reply: javascriptReply},
			{keywords: []string{"python"}, reply: pythonReply},
		},
		fallback: genericReply,
	}
}

// GenerateReply returns the first matching canned reply, or the generic
// capabilities reply when nothing matches.
func (r *KeywordResponder) GenerateReply(userText string) string {
	lower := strings.ToLower(userText)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return r.fallback
}

const reactReply = "React is a popular JavaScript library for building user interfaces. Here's a simple component example:\n\n" +
	"```jsx\n" +
	"import React, { useState } from 'react';\n\n" +
	"function Counter() {\n" +
	"  const [count, setCount] = useState(0);\n" +
	"  \n" +
	"  return (\n" +
	"    <div>\n" +
	"      <p>You clicked {count} times</p>\n" +
	"      <button onClick={() => setCount(count + 1)}>\n" +
	"        Click me\n" +
	"      </button>\n" +
	"    </div>\n" +
	"  );\n" +
	"}\n\n" +
	"export default Counter;\n" +
	"```\n\n" +
	"This creates a simple counter component with a button that increments the count when clicked."

const javascriptReply = "Here's a JavaScript example that demonstrates async/await with error handling:\n\n" +
	"```javascript\n" +
	"async function fetchData(url) {\n" +
	"  try {\n" +
	"    const response = await fetch(url);\n" +
	"    \n" +
	"    if (!response.ok) {\n" +
	"      throw new Error(`HTTP error! status: ${response.status}`);\n" +
	"    }\n" +
	"    \n" +
	"    const data = await response.json();\n" +
	"    return data;\n" +
	"  } catch (error) {\n" +
	"    console.error('Fetch error:', error);\n" +
	"    throw error;\n" +
	"  }\n" +
	"}\n\n" +
	"// Usage\n" +
	"fetchData('https://api.example.com/data')\n" +
	"  .then(data => console.log('Success:', data))\n" +
	"  .catch(error => console.error('Error in main:', error));\n" +
	"```\n\n" +
	"This function fetches data from a URL, handles potential errors, and returns the parsed JSON response."

const pythonReply = "Here's a Python example demonstrating a simple class with inheritance:\n\n" +
	"```python\n" +
	"class Animal:\n" +
	"    def __init__(self, name, species):\n" +
	"        self.name = name\n" +
	"        self.species = species\n" +
	"        \n" +
	"    def make_sound(self):\n" +
	"        print(\"Some generic animal sound\")\n" +
	"        \n" +
	"    def __str__(self):\n" +
	"        return f\"{self.name} is a {self.species}\"\n" +
	"        \n" +
	"class Dog(Animal):\n" +
	"    def __init__(self, name, breed):\n" +
	"        super().__init__(name, species=\"Dog\")\n" +
	"        self.breed = breed\n" +
	"        \n" +
	"    def make_sound(self):\n" +
	"        print(\"Woof!\")\n" +
	"        \n" +
	"    def __str__(self):\n" +
	"        return f\"{self.name} is a {self.breed} dog\"\n" +
	"        \n" +
	"# Create instances\n" +
	"generic_animal = Animal(\"Leo\", \"Lion\")\n" +
	"dog = Dog(\"Buddy\", \"Golden Retriever\")\n\n" +
	"# Test the objects\n" +
	"print(generic_animal)  # Leo is a Lion\n" +
	"generic_animal.make_sound()  # Some generic animal sound\n\n" +
	"print(dog)  # Buddy is a Golden Retriever\n" +
	"dog.make_sound()  # Woof!\n" +
	"```\n\n" +
	"This example shows basic OOP principles in Python: class definition, inheritance, method overriding, and the use of `super()`."

const genericReply = "I'm an AI assistant specialized in helping with coding questions. Feel free to ask about:\n\n" +
	"1. Programming languages like JavaScript, Python, Java, etc.\n" +
	"2. Frameworks and libraries such as React, Vue, Angular, Express, Django, etc.\n" +
	"3. Algorithms and data structures\n" +
	"4. Best practices and design patterns\n" +
	"5. Debugging help and code reviews\n\n" +
	"What programming topic would you like help with today?"
