package service

// Canned chat texts. Markup is limited to <b> and newlines, which the chat widget renders.

var greetingVariants = []string{
	"Hello! 👋 Welcome to CrossBox Fitness! I'm your gym assistant. How can I help you today? Feel free to ask about our subscription plans, classes, trainers, or bookings!",
	"Hi there! 💪 Welcome to CrossBox! I'm here to answer any questions about our gym services, membership plans, and classes. What would you like to know?",
	"Hey! 🏋️ Thanks for visiting CrossBox. I'm your virtual fitness guide. Ask me about anything - from memberships to workout classes!",
}

var defaultVariants = []string{
	"I didn't quite understand that. Could you rephrase? I can help with subscriptions, classes, trainers, bookings, or general gym information. 😊",
	"That's an interesting question! I specialize in gym information. Try asking about our plans, workouts, trainers, or memberships! 💪",
	"Hmm, I'm not sure about that one. Ask me about subscriptions, classes, trainers, or how to book a session! 🏋️",
}

const helpMessage = "❓ <b>How Can I Help You?</b>\n\n" +
	"I can provide information about:\n\n" +
	"📋 <b>Subscriptions & Plans</b> - Ask about our membership options and pricing\n" +
	"🏋️ <b>Workouts & Classes</b> - Information about available classes and training\n" +
	"👨‍🏫 <b>Trainers</b> - Details about our expert trainers and their specializations\n" +
	"👥 <b>Membership</b> - Member benefits and registration information\n" +
	"📅 <b>Class Booking</b> - How to book classes and available time slots\n" +
	"🏢 <b>Gym Info</b> - Location, hours, and general information\n\n" +
	"Just type your question naturally, and I'll try my best to help! 😊"

const gymInfoMessage = "🏢 <b>CrossBox Fitness Gym</b>\n\n" +
	"💪 <b>About Us:</b>\n" +
	"CrossBox is a premier fitness facility dedicated to transforming lives through fitness, strength, and community.\n\n" +
	"🕐 <b>Operating Hours:</b>\n" +
	"Monday - Friday: 6:00 AM - 10:00 PM\n" +
	"Saturday: 7:00 AM - 8:00 PM\n" +
	"Sunday: 8:00 AM - 6:00 PM\n\n" +
	"🎯 <b>Our Mission:</b>\n" +
	"To inspire and empower our members to achieve their fitness goals in a supportive and professional environment.\n\n" +
	"📞 <b>Contact Us:</b>\n" +
	"Call or visit our website for more information!"

// --- Subscription ---

const (
	subscriptionHeader   = "📋 <b>Our Subscription Plans:</b>\n\n"
	subscriptionCTA      = "💡 Would you like to know more about any specific plan, or would you like to enroll?"
	subscriptionFallback = "We currently don't have any active subscription plans listed. Please contact our support team for more information."
	subscriptionApology  = "I couldn't fetch the subscription plans. Please try again."
)

// --- Workout ---

const (
	workoutHeader   = "🏋️ <b>Classes Available at CrossBox:</b>\n\n"
	workoutCTA      = "📅 Would you like to book a class or know about our training programs? Feel free to ask!"
	workoutFallback = "We have various workout classes and training sessions available. Here's what we offer:\n\n" +
		"• <b>Strength Training</b> - Build muscle and increase power\n" +
		"• <b>CrossFit</b> - High-intensity functional training\n" +
		"• <b>Cardio Classes</b> - Burn calories and improve endurance\n" +
		"• <b>Yoga & Flexibility</b> - Improve flexibility and mental peace\n" +
		"• <b>Personal Training</b> - One-on-one customized sessions\n" +
		"• <b>Group Classes</b> - Team-based workout sessions\n\n" +
		workoutCTA
	workoutApology = "I couldn't retrieve the workout information. Please try again."
)

// --- Trainer ---

const (
	trainerHeader   = "👨‍🏫 <b>Our Expert Trainers:</b>\n\n"
	trainerCTA      = "💬 Would you like to book a session with any of our trainers?"
	trainerFallback = "We have experienced and certified trainers available. Please contact our support team to get connected with the right trainer for your fitness goals!"
	trainerApology  = "I couldn't retrieve trainer information. Please contact our support team."
)

// --- Membership ---

const (
	membershipHeader  = "👥 <b>Membership Information:</b>\n\n"
	membershipDetails = "📋 <b>Membership Types:</b>\n" +
		"• Standard - Access to all gym facilities\n" +
		"• Premium - Gym access + Personal training sessions\n" +
		"• Elite - Full access + Nutrition consultation\n\n" +
		"🎁 <b>Member Benefits:</b>\n" +
		"✓ Access to state-of-the-art equipment\n" +
		"✓ Group fitness classes\n" +
		"✓ Expert trainer guidance\n" +
		"✓ Progress tracking and assessment\n" +
		"✓ Community support and events\n\n"
	membershipCTA      = "🚀 Want to become a member? Let me help you get started!"
	membershipFallback = membershipHeader +
		"✨ Our gym family is just getting started, and you could be one of our first members!\n\n" +
		membershipDetails + membershipCTA
	membershipApology = "I couldn't fetch membership details. Please try again."
)

// --- Booking ---

const (
	bookingSteps = "📅 <b>Class Booking Information:</b>\n\n" +
		"🎯 <b>How to Book a Class:</b>\n" +
		"1. Choose your preferred class\n" +
		"2. Select your desired date and time slot\n" +
		"3. Provide your details\n" +
		"4. Confirm your booking\n\n"
	bookingSlots = "\n📌 <b>Available Time Slots:</b>\n" +
		"• Morning: 6:00 AM - 10:00 AM\n" +
		"• Afternoon: 12:00 PM - 4:00 PM\n" +
		"• Evening: 5:00 PM - 9:00 PM\n\n"
	bookingCTA      = "🎫 Ready to book? Click the button below to get started!"
	bookingFallback = bookingSteps +
		"Check our class schedule to see what's running this week.\n" +
		bookingSlots + bookingCTA
	bookingApology = "I couldn't retrieve booking information. Please try again."
)
