package gemini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voicecart/voicecart/internal/core/domain"
)

// productContext serializes the catalog as one line per product:
//
//	- Apple ($1.5) [aliases: apples, apple]
//
// Embedded in every prompt so the model grounds its answers in the
// actual store inventory.
func productContext(c domain.Catalog) string {
	var b strings.Builder
	for _, p := range c.AllProducts() {
		fmt.Fprintf(&b, "- %s ($%s) [aliases: %s]\n",
			p.Name, formatPrice(p.Price), strings.Join(p.Aliases, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func categoryNames(c domain.Catalog) string {
	var names []string
	for _, cat := range c.Categories() {
		names = append(names, cat.Name)
	}
	return strings.Join(names, ", ")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func extractPrompt(c domain.Catalog, command string) string {
	return fmt.Sprintf(`You are an intelligent shopping assistant AI with access to the product catalog.

AVAILABLE PRODUCTS IN OUR STORE:
%s

Your task: Analyze the user's command and extract shopping cart actions ONLY for products that exist in our catalog.

Rules:
1. For each item, extract: action ("add" or "remove"), product (exact name from catalog), quantity (number)
2. If user mentions a product NOT in our catalog, include it with action "unavailable"
3. Match products intelligently using aliases (e.g., "mangoes" -> "Mango", "chai" -> "Tea")
4. Output ONLY a valid JSON array, no markdown formatting
5. Use exact product names from the catalog
6. Default the quantity to the stated number, or 1 when none is stated

Examples:

Input: "Add 2 mangoes and 1 milk"
Output: [{"action": "add", "product": "Mango", "quantity": 2}, {"action": "add", "product": "Milk", "quantity": 1}]

Input: "Remove 1 sugar and add 3 apples"
Output: [{"action": "remove", "product": "Sugar", "quantity": 1}, {"action": "add", "product": "Apple", "quantity": 3}]

Input: "Add 2 pizzas and 1 coffee"
Output: [{"action": "unavailable", "product": "pizza", "quantity": 2, "message": "Pizza is not available in our catalog"}, {"action": "add", "product": "Coffee", "quantity": 1}]

Now process this command:
Input: %q
Output:`, productContext(c), command)
}

func chatPrompt(c domain.Catalog, message string) string {
	categories := categoryNames(c)
	return fmt.Sprintf(`You are VoiceCart AI Assistant, a helpful and friendly AI assistant for an e-commerce grocery shopping website called VoiceCart.

Your capabilities:
- Help users find products from our catalog
- Answer questions about the website features
- Explain how voice shopping works
- Provide shopping tips and recommendations
- Answer queries about specific products and their prices

AVAILABLE PRODUCTS IN OUR STORE:
%s

PRODUCT CATEGORIES: %s

Website features you should know:
- Voice-powered shopping using speech recognition
- AI-powered cart management with natural language
- Instant invoice generation
- Multiple product categories: %s
- Google authentication for user accounts
- Real-time product availability checking

When users ask about products:
- Only recommend products from the available catalog above
- Mention exact prices when relevant
- Suggest alternatives if a product isn't available
- Be specific about what's in stock

Keep responses conversational, helpful, and concise (2-3 sentences max unless more detail is requested).

User: %s
AI Assistant:`, productContext(c), categories, categories, message)
}

func searchPrompt(c domain.Catalog, query string) string {
	return fmt.Sprintf(`You are a product search assistant for the VoiceCart grocery store.

AVAILABLE PRODUCTS:
%s

User is searching for: %q

Your task:
1. Find ALL matching products from the catalog (consider names, aliases, categories)
2. If no exact match, suggest similar or related products
3. Return ONLY a JSON array with matching products, no markdown formatting

Output format:
[
  {
    "name": "Product Name",
    "price": 1.5,
    "relevance": "exact" | "similar" | "related",
    "reason": "why this product matches"
  }
]

Search query: %q
Output:`, productContext(c), query, query)
}
