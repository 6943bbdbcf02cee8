package service

// pcosKnowledge is the context handed to the question-answering model.
const pcosKnowledge = `PCOS (Polycystic Ovary Syndrome) is a hormonal disorder affecting women of reproductive age.

Key aspects of PCOS management:

Diet: Focus on low glycemic index foods, anti-inflammatory foods, lean proteins, and healthy fats.
Avoid processed foods, sugary drinks, and refined carbohydrates. Good foods include leafy greens,
berries, nuts, fish, lean meats, quinoa, and legumes.

Exercise: Regular physical activity helps improve insulin sensitivity. Combination of cardio and
strength training is recommended. Aim for at least 150 minutes of moderate exercise per week.

Common symptoms: Irregular periods, weight gain, acne, hair growth, hair loss, mood changes,
insulin resistance, and difficulty losing weight.

Lifestyle: Stress management, adequate sleep (7-9 hours), and maintaining a healthy weight
are crucial for managing PCOS symptoms.

Supplements: Some women benefit from inositol, vitamin D, omega-3 fatty acids, and chromium,
but consult healthcare providers before starting any supplements.`

const dietAdvice = `For PCOS-friendly nutrition, focus on:

Include:
- Low glycemic index foods (quinoa, sweet potatoes, oats)
- Anti-inflammatory foods (fatty fish, leafy greens, berries)
- Lean proteins (chicken, fish, legumes, tofu)
- Healthy fats (avocado, nuts, olive oil)
- Fiber-rich foods (vegetables, fruits, whole grains)

Limit:
- Processed and refined foods
- Sugary drinks and snacks
- White bread and pasta
- Fried foods
- Excessive dairy (some women are sensitive)

Tip: Eat balanced meals with protein, healthy fats, and complex carbs to help stabilize blood sugar levels.`

const symptomAdvice = `Common PCOS symptoms and management tips:

- Irregular periods: maintain a healthy weight, manage stress, consider spearmint tea
- Weight management: focus on whole foods, portion control, regular exercise
- Mood changes: regular exercise, adequate sleep, stress reduction techniques
- Insulin resistance: low GI diet, regular meals, strength training
- Natural support: cinnamon, spearmint tea, and inositol may help

Important: always consult your healthcare provider for personalized treatment plans and before making significant changes to your routine.`

const exerciseAdvice = `PCOS-friendly exercise recommendations:

Cardio (3-4x/week): brisk walking, swimming, cycling for 30-45 minutes at moderate intensity helps with insulin sensitivity.

Strength training (2-3x/week): focus on major muscle groups; improves insulin sensitivity and metabolism and can help with weight management.

Stress-reducing activities: yoga, pilates and tai chi help manage cortisol levels and support hormonal balance.

Start gradually and listen to your body. Consistency is more important than intensity!`

const greetingReply = "Hello! I'm your PCOS Health Assistant. I can help you with PCOS-friendly diet suggestions, symptom management, exercise recommendations, and answer questions about PCOS. What would you like to know about today?"

const defaultReply = "I'm here to help with your PCOS journey. You can ask me about diet, symptoms, exercise, or any PCOS-related questions!"

const unavailableReply = "I'm sorry, I couldn't process your question at the moment. Please try again later."
