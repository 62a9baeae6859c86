// Built-in sample conversations used when nothing has been persisted yet
package store

import (
	"time"

	"github.com/stormdotcom/friday-code-gpt/pkg/models"
)

// SeedConversations returns the sample conversation set. Timestamps are
// relative to now so the sidebar shows sensible ages on first launch.
func SeedConversations() []*models.Conversation {
	now := time.Now().UnixMilli()
	twoDaysAgo := now - 2*24*60*60*1000
	oneDayAgo := now - 24*60*60*1000
	oneHourAgo := now - 60*60*1000

	return []*models.Conversation{
		{
			ID:        "1",
			Title:     "React Component Optimization",
			CreatedAt: twoDaysAgo,
			UpdatedAt: twoDaysAgo,
			Messages: []models.Message{
				{
					ID:             "msg1",
					ConversationID: "1",
					Content:        "How can I optimize rendering performance in a React component with a large list?",
					Role:           models.RoleUser,
					CreatedAt:      twoDaysAgo,
				},
				{
					ID:             "msg2",
					ConversationID: "1",
					Content:        reactOptimizationAnswer,
					Role:           models.RoleAssistant,
					CreatedAt:      twoDaysAgo,
				},
			},
		},
		{
			ID:        "2",
			Title:     "JavaScript Promises",
			CreatedAt: oneDayAgo,
			UpdatedAt: oneDayAgo,
			Messages: []models.Message{
				{
					ID:             "msg3",
					ConversationID: "2",
					Content:        "Can you explain how to use async/await with try/catch for error handling in JavaScript?",
					Role:           models.RoleUser,
					CreatedAt:      oneDayAgo,
				},
				{
					ID:             "msg4",
					ConversationID: "2",
					Content:        asyncAwaitAnswer,
					Role:           models.RoleAssistant,
					CreatedAt:      oneDayAgo,
				},
			},
		},
		{
			ID:        "3",
			Title:     "General Discussion",
			CreatedAt: oneHourAgo,
			UpdatedAt: oneHourAgo,
			Messages: []models.Message{
				{
					ID:             "msg5",
					ConversationID: "3",
					Content:        "What's the weather like today?",
					Role:           models.RoleUser,
					CreatedAt:      oneHourAgo,
				},
				{
					ID:             "msg6",
					ConversationID: "3",
					Content: "I don't have access to real-time weather information or your location. " +
						"To get the current weather, you could check a weather service like Weather.com, AccuWeather, " +
						"or use a weather app on your device. Alternatively, you could specify your location and I can " +
						"provide general information about seasonal weather patterns for that region.",
					Role:      models.RoleAssistant,
					CreatedAt: oneHourAgo,
				},
			},
		},
	}
}

const reactOptimizationAnswer = "When working with large lists in React, rendering performance can become a bottleneck. Here are several strategies to optimize it:\n\n" +
	"### 1. Use virtualization\n" +
	"Virtualization is the most effective technique for handling large lists. It only renders items that are currently visible in the viewport.\n\n" +
	"```jsx\n" +
	"import { FixedSizeList } from 'react-window';\n\n" +
	"function VirtualizedList({ items }) {\n" +
	"  const Row = ({ index, style }) => (\n" +
	"    <div style={style}>\n" +
	"      {items[index].name}\n" +
	"    </div>\n" +
	"  );\n\n" +
	"  return (\n" +
	"    <FixedSizeList\n" +
	"      height={500}\n" +
	"      width=\"100%\"\n" +
	"      itemCount={items.length}\n" +
	"      itemSize={35}\n" +
	"    >\n" +
	"      {Row}\n" +
	"    </FixedSizeList>\n" +
	"  );\n" +
	"}\n" +
	"```\n\n" +
	"### 2. Use React.memo for list items\n" +
	"Wrap your list item component with React.memo to prevent unnecessary re-renders:\n\n" +
	"```jsx\n" +
	"const ListItem = React.memo(({ item }) => {\n" +
	"  return <div>{item.name}</div>;\n" +
	"});\n\n" +
	"function List({ items }) {\n" +
	"  return (\n" +
	"    <div>\n" +
	"      {items.map(item => (\n" +
	"        <ListItem key={item.id} item={item} />\n" +
	"      ))}\n" +
	"    </div>\n" +
	"  );\n" +
	"}\n" +
	"```\n\n" +
	"### 3. Use stable keys\n" +
	"Always use stable, unique keys for list items:\n\n" +
	"```jsx\n" +
	"{items.map(item => (\n" +
	"  <ListItem key={item.id} item={item} />\n" +
	"))}\n" +
	"```\n\n" +
	"### 4. Avoid anonymous functions in renders\n" +
	"```jsx\n" +
	"// Bad\n" +
	"{items.map(item => (\n" +
	"  <ListItem \n" +
	"    key={item.id} \n" +
	"    item={item}\n" +
	"    onClick={() => handleClick(item.id)} // Creates new function every render\n" +
	"  />\n" +
	"))}\n\n" +
	"// Good\n" +
	"const handleItemClick = useCallback((id) => {\n" +
	"  // handle click\n" +
	"}, []);\n\n" +
	"{items.map(item => (\n" +
	"  <ListItem \n" +
	"    key={item.id} \n" +
	"    item={item}\n" +
	"    onClick={handleItemClick} \n" +
	"    id={item.id}\n" +
	"  />\n" +
	"))}\n" +
	"```\n\n" +
	"### 5. Use useMemo for derived data\n" +
	"```jsx\n" +
	"const filteredItems = useMemo(() => {\n" +
	"  return items.filter(item => item.name.includes(searchTerm));\n" +
	"}, [items, searchTerm]);\n" +
	"```\n\n" +
	"Implementing these techniques should significantly improve your React list performance."

const asyncAwaitAnswer = "# Using async/await with try/catch for error handling\n\n" +
	"Async/await is a modern JavaScript syntax that makes working with Promises more readable and maintainable. When combined with try/catch blocks, it provides an elegant way to handle errors in asynchronous code.\n\n" +
	"## Basic Pattern\n\n" +
	"```javascript\n" +
	"async function fetchData() {\n" +
	"  try {\n" +
	"    // Await any promise-based operation\n" +
	"    const response = await fetch('https://api.example.com/data');\n" +
	"    \n" +
	"    // If the response is not ok, throw an error\n" +
	"    if (!response.ok) {\n" +
	"      throw new Error(`HTTP error! status: ${response.status}`);\n" +
	"    }\n" +
	"    \n" +
	"    // Parse the JSON response\n" +
	"    const data = await response.json();\n" +
	"    \n" +
	"    // Process the data\n" +
	"    console.log(data);\n" +
	"    return data;\n" +
	"  } catch (error) {\n" +
	"    // Handle any errors that occurred in the try block\n" +
	"    console.error('There was a problem with the fetch operation:', error);\n" +
	"  } finally {\n" +
	"    // Optional finally block runs regardless of success or failure\n" +
	"    console.log('Fetch operation completed');\n" +
	"  }\n" +
	"}\n" +
	"```\n\n" +
	"## Parallel Execution with Promise.all\n\n" +
	"For better performance, you can run multiple promises in parallel:\n\n" +
	"```javascript\n" +
	"async function fetchParallel() {\n" +
	"  try {\n" +
	"    const [users, posts, comments] = await Promise.all([\n" +
	"      fetch('https://api.example.com/users').then(res => res.json()),\n" +
	"      fetch('https://api.example.com/posts').then(res => res.json()),\n" +
	"      fetch('https://api.example.com/comments').then(res => res.json())\n" +
	"    ]);\n" +
	"    \n" +
	"    return { users, posts, comments };\n" +
	"  } catch (error) {\n" +
	"    // If any promise rejects, the catch block will execute\n" +
	"    console.error('One of the parallel requests failed:', error);\n" +
	"    return null;\n" +
	"  }\n" +
	"}\n" +
	"```\n\n" +
	"This approach provides a clean, synchronous-looking way to handle asynchronous operations with proper error handling."
