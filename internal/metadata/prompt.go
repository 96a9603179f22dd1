package metadata

// metadataPrompt instructs the model to describe the image as stock
// metadata in a line-labeled format the parser can scan without JSON.
const metadataPrompt = `
Analyze this image and create stock photo metadata:

FOCUS ON IMAGE CONTENT: Describe exactly what you see, not generic terms.

TITLES (6-12 words):
- Primary title describing main subject + style + purpose
- CRITICAL: Include numbers ONLY if they are clearly visible and readable in the image itself
- DO NOT add random numbers or quantities unless they appear in the image
- If numbers are visible: include them in ALL THREE titles with proper formatting
- Examples with numbers: "Anniversary Badges 1, 5, 10, 15, 20, 25 - Gold Design Set"
- Examples without numbers: "Corporate Business Team Meeting - Professional Workplace"
- Use ONE hyphen only: "Main Subject - Style/Purpose"
- No symbols except hyphen and comma (for visible numbers only)
- Two alternative titles with different keyword angles

DESCRIPTION (150-200 characters):
- Commercial description focusing on the image content
- If numbers are visible, list them individually without explanatory text (e.g., "1, 5, 10" not "Number 01 is visible")

CATEGORY:
Choose main theme: Business, Technology, Nature, People, Food, Travel, Art, etc.

KEYWORDS (exactly 50):
Create balanced keywords across these categories:
- IMAGE CONTENT (10 keywords): What you actually see in the image
- BUSINESS (8 keywords): Commercial terms, industries
- VISUAL STYLE (8 keywords): Colors, composition, design style
- PURPOSE (8 keywords): Usage, application, context
- INDUSTRY (8 keywords): Relevant sectors, markets
- MATERIALS/OBJECTS (8 keywords): Physical elements, textures

KEYWORD RULES:
- Each must be completely unique (no synonyms)
- Focus on buyer search behavior
- Single words preferred
- No generic terms like "image", "photo"
- Ensure commercial value

Response format:
TITLE- [title here]
ALT_TITLE_1- [alternative 1]
ALT_TITLE_2- [alternative 2]
DESCRIPTION- [description]
CATEGORY- [category]
KEYWORDS- word1, word2, word3, [continue to 50 words]
`
